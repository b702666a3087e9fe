package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"polygon":   polygonCases,
	"twist":     twistCases,
	"scale":     scaleCases,
	"curve":     curveCases,
	"hole":      holeCases,
	"precision": precisionCases,
	"large":     largeCases,
}
