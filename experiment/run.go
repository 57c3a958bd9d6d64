package experiment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/epilectrik/voynich-sub010/cluster"
	"github.com/epilectrik/voynich-sub010/compat"
	"github.com/epilectrik/voynich-sub010/corpus"
	"github.com/epilectrik/voynich-sub010/embed"
	"github.com/epilectrik/voynich-sub010/morph"
)

// State is the lifecycle position of a Run.
type State int

const (
	// Configured: parameters fixed, no artifact exists yet.
	Configured State = iota
	// MatrixBuilt: the compatibility matrix exists.
	MatrixBuilt
	// Embedded: the spectral embedding exists.
	Embedded
	// Clustered: the model-selection scan picked a partition.
	Clustered
	// Validated: the permutation null model completed.
	Validated
	// Reported: terminal; the immutable result artifact exists.
	Reported
)

// String returns the stable report label of a state.
func (s State) String() string {
	switch s {
	case Configured:
		return "CONFIGURED"
	case MatrixBuilt:
		return "MATRIX_BUILT"
	case Embedded:
		return "EMBEDDED"
	case Clustered:
		return "CLUSTERED"
	case Validated:
		return "VALIDATED"
	case Reported:
		return "REPORTED"
	default:
		return "UNKNOWN"
	}
}

// Config fixes every parameter of a run up front. The zero value of
// optional fields selects the documented defaults.
type Config struct {
	// Source yields the sub-corpus under analysis. Required.
	Source corpus.Source

	// Segmenter derives middles; nil selects the default EVA inventory.
	Segmenter *morph.Segmenter

	// Build configures the compatibility matrix.
	Build compat.Options

	// K is the target embedding dimensionality. Required (≥ 1).
	K int

	// Method selects the clustering family.
	Method cluster.Method

	// KMin/KMax bound the cluster-count scan. Zero values default to the
	// customary 2..8 range.
	KMin, KMax int

	// Seed drives every random draw of the run; 0 selects the fixed
	// default stream.
	Seed int64

	// Replicates is the permutation count; 0 selects DefaultReplicates.
	Replicates int

	// Workers is the replicate parallelism; values below 2 run inline.
	Workers int
}

// Run is one experiment walking the fixed state machine. Not safe for
// concurrent use; a run is a straight-line batch pipeline.
type Run struct {
	cfg       Config
	state     State
	matrix    *compat.Matrix
	embedding *embed.Embedding
	selection *cluster.Selection
	test      *TestResult
	result    *Result
}

// NewRun returns a run in the Configured state.
func NewRun(cfg Config) *Run {
	if cfg.KMin == 0 {
		cfg.KMin = 2
	}
	if cfg.KMax == 0 {
		cfg.KMax = 8
	}
	if cfg.Replicates == 0 {
		cfg.Replicates = DefaultReplicates
	}
	return &Run{cfg: cfg, state: Configured}
}

// State returns the run's current lifecycle position.
func (r *Run) State() State { return r.state }

// require guards a transition against out-of-order invocation.
func (r *Run) require(s State) error {
	if r.state != s {
		return fmt.Errorf("in state %s: %w", r.state, ErrStateOrder)
	}
	return nil
}

// BuildMatrix builds the compatibility matrix (Configured → MatrixBuilt).
// An ErrInsufficientVocabulary from the builder aborts the run for this
// corpus; callers skip the experiment rather than proceed degenerately.
func (r *Run) BuildMatrix() error {
	if err := r.require(Configured); err != nil {
		return err
	}
	m, err := compat.Build(r.cfg.Source, r.cfg.Segmenter, r.cfg.Build)
	if err != nil {
		return err
	}
	r.matrix = m
	r.state = MatrixBuilt
	return nil
}

// Embed decomposes the matrix (MatrixBuilt → Embedded). Dimensionality
// clamping is not an error; it surfaces later in the Result.
func (r *Run) Embed() error {
	if err := r.require(MatrixBuilt); err != nil {
		return err
	}
	e, err := embed.Embed(r.matrix, r.cfg.K)
	if err != nil {
		return err
	}
	r.embedding = e
	r.state = Embedded
	return nil
}

// Cluster scans the configured count range and keeps the best fit
// (Embedded → Clustered).
func (r *Run) Cluster() error {
	if err := r.require(Embedded); err != nil {
		return err
	}
	sel, err := cluster.Select(r.embedding.Coords, r.cfg.Method, r.cfg.KMin, r.cfg.KMax, r.cfg.Seed)
	if err != nil {
		return err
	}
	r.selection = sel
	r.state = Clustered
	return nil
}

// Validate runs the label-permutation null model (Clustered → Validated).
// A NOT_SIGNIFICANT verdict still validates: absence of structure is a
// result, not a failure.
func (r *Run) Validate() error {
	if err := r.require(Clustered); err != nil {
		return err
	}
	test, err := PermutationTest(r.embedding.Coords, r.selection.Best.Labels,
		r.cfg.Replicates, r.cfg.Seed, r.cfg.Workers)
	if err != nil {
		return err
	}
	r.test = test
	r.state = Validated
	return nil
}

// Report seals the run (Validated → Reported) and returns the immutable
// result artifact. Reported is terminal: no further transitions exist, and
// repeated calls return the same artifact.
func (r *Run) Report() (*Result, error) {
	if r.state == Reported {
		return r.result, nil
	}
	if err := r.require(Validated); err != nil {
		return nil, err
	}
	best := r.selection.Best
	assignment := make(map[string]int, len(r.embedding.Vocab))
	for i, mid := range r.embedding.Vocab {
		assignment[mid] = best.Labels[i]
	}
	r.result = &Result{
		RunID:         uuid.NewString(),
		Method:        best.Method.String(),
		Clusters:      best.K,
		RequestedK:    r.embedding.RequestedK,
		EffectiveK:    r.embedding.EffectiveK,
		ClampedK:      r.embedding.Clamped(),
		NegativeMass:  r.embedding.NegativeMass,
		HubEigenvalue: r.embedding.HubEigenvalue,
		Vocabulary:    r.embedding.Vocab,
		Assignment:    assignment,
		Test:          *r.test,
		Seed:          r.cfg.Seed,
	}
	r.state = Reported
	return r.result, nil
}

// Result is the terminal artifact of one run: cluster assignment plus
// significance statistics and every numerical-degradation flag. Consumed
// read-only by the out-of-scope reporting scripts, typically as JSON.
type Result struct {
	RunID         string         `json:"run_id"`
	Method        string         `json:"method"`
	Clusters      int            `json:"clusters"`
	RequestedK    int            `json:"requested_k"`
	EffectiveK    int            `json:"effective_k"`
	ClampedK      bool           `json:"clamped_k"`
	NegativeMass  float64        `json:"negative_mass"`
	HubEigenvalue float64        `json:"hub_eigenvalue"`
	Vocabulary    []string       `json:"vocabulary"`
	Assignment    map[string]int `json:"assignment"`
	Test          TestResult     `json:"test"`
	Seed          int64          `json:"seed"`
}
