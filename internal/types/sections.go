package types

// SectionIDs lists the ten fixed DepEd procedure step letters in order.
var SectionIDs = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// sectionTitles maps each step letter to its full DepEd title as used in
// the generation contract.
var sectionTitles = map[string]string{
	"A": "Reviewing previous lesson or presenting the new lesson",
	"B": "Establishing a purpose for the lesson",
	"C": "Presenting examples/instances of the new lesson",
	"D": "Discussing new concepts and practicing new skills #1",
	"E": "Discussing new concepts and practicing new skills #2",
	"F": "Developing mastery (Formative Assessment #3)",
	"G": "Finding practical applications of concepts and skills in daily living",
	"H": "Making generalizations and abstractions about the lesson",
	"I": "Evaluating learning (Quiz/Test/Performance Task)",
	"J": "Additional activities for applications",
}

// SectionTitle returns the fixed title for a step letter, or "" when the id
// is not one of A-J.
func SectionTitle(id string) string {
	return sectionTitles[id]
}
