package grammar

// ClassID identifies one instruction-equivalence class. Zero is the
// Unclassified sentinel; real classes are numbered from 1.
type ClassID int

// Unclassified is returned for any surface form absent from the table.
const Unclassified ClassID = 0

// Role groups instruction classes by function.
type Role int

const (
	// RoleUnclassified is the role of the Unclassified sentinel.
	RoleUnclassified Role = iota
	// RoleCoreControl marks the high-frequency control words that anchor
	// line structure.
	RoleCoreControl
	// RoleEnergyOperator marks gallows-initial operator words.
	RoleEnergyOperator
	// RoleFlowOperator marks bench-initial operator words.
	RoleFlowOperator
	// RoleConnector marks the short frequent connectors and closers.
	RoleConnector
	// RoleModifier marks satellite words that attach to operators.
	RoleModifier
)

// String returns the stable report label of a role.
func (r Role) String() string {
	switch r {
	case RoleCoreControl:
		return "core-control"
	case RoleEnergyOperator:
		return "energy-operator"
	case RoleFlowOperator:
		return "flow-operator"
	case RoleConnector:
		return "connector"
	case RoleModifier:
		return "modifier"
	default:
		return "unclassified"
	}
}

// classDef is one row of the built-in class inventory: a class, its role,
// and the surface forms that collapse onto it.
type classDef struct {
	id    ClassID
	role  Role
	forms []string
}

// builtinClasses is the 49-class inventory derived from the external
// class-definition artifact. Variant spellings that behave identically in
// transition statistics share a class.
var builtinClasses = []classDef{
	{1, RoleCoreControl, []string{"daiin", "dain"}},
	{2, RoleCoreControl, []string{"aiin", "ain"}},
	{3, RoleCoreControl, []string{"saiin", "sain"}},
	{4, RoleCoreControl, []string{"oaiin"}},
	{5, RoleCoreControl, []string{"dal"}},
	{6, RoleCoreControl, []string{"dar"}},
	{7, RoleCoreControl, []string{"dol"}},
	{8, RoleCoreControl, []string{"dor"}},
	{9, RoleCoreControl, []string{"dam"}},
	{10, RoleEnergyOperator, []string{"qokeedy", "qokedy"}},
	{11, RoleEnergyOperator, []string{"qokeey", "qokey"}},
	{12, RoleEnergyOperator, []string{"qokaiin", "qokain"}},
	{13, RoleEnergyOperator, []string{"qokal"}},
	{14, RoleEnergyOperator, []string{"qokar"}},
	{15, RoleEnergyOperator, []string{"qokol"}},
	{16, RoleEnergyOperator, []string{"qotedy", "qoteedy"}},
	{17, RoleEnergyOperator, []string{"qotain", "qotaiin"}},
	{18, RoleEnergyOperator, []string{"qoteey", "qotey"}},
	{19, RoleEnergyOperator, []string{"okeey", "okey"}},
	{20, RoleEnergyOperator, []string{"okedy", "okeedy"}},
	{21, RoleEnergyOperator, []string{"okaiin", "okain"}},
	{22, RoleEnergyOperator, []string{"otedy", "oteedy"}},
	{23, RoleEnergyOperator, []string{"otaiin", "otain"}},
	{24, RoleEnergyOperator, []string{"oteey", "otey"}},
	{25, RoleEnergyOperator, []string{"okal"}},
	{26, RoleEnergyOperator, []string{"okar"}},
	{27, RoleEnergyOperator, []string{"otal"}},
	{28, RoleEnergyOperator, []string{"otar"}},
	{29, RoleFlowOperator, []string{"chedy"}},
	{30, RoleFlowOperator, []string{"shedy"}},
	{31, RoleFlowOperator, []string{"cheey", "chey"}},
	{32, RoleFlowOperator, []string{"sheey", "shey"}},
	{33, RoleFlowOperator, []string{"chol"}},
	{34, RoleFlowOperator, []string{"chor"}},
	{35, RoleFlowOperator, []string{"shol"}},
	{36, RoleFlowOperator, []string{"sho"}},
	{37, RoleFlowOperator, []string{"cthy"}},
	{38, RoleFlowOperator, []string{"chdy"}},
	{39, RoleFlowOperator, []string{"cho"}},
	{40, RoleConnector, []string{"ol"}},
	{41, RoleConnector, []string{"or"}},
	{42, RoleConnector, []string{"al"}},
	{43, RoleConnector, []string{"ar"}},
	{44, RoleConnector, []string{"am"}},
	{45, RoleConnector, []string{"s"}},
	{46, RoleConnector, []string{"y"}},
	{47, RoleModifier, []string{"dy"}},
	{48, RoleModifier, []string{"chy"}},
	{49, RoleModifier, []string{"shy"}},
}
