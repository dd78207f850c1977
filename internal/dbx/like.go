package dbx

import "strings"

// LikeEscape is the escape character paired with ContainsPattern; queries
// must say ESCAPE '\'.
const LikeEscape = `\`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching term anywhere in a value.
// Wildcards inside term match literally. Case folding is left to the
// query, which must apply the same LOWER to both sides.
func ContainsPattern(term string) string {
	return "%" + likeReplacer.Replace(term) + "%"
}
