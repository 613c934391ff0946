package synonyms

// baseSynonyms maps variant phrases to their canonical forms. User entries
// override these on key collision. Canonical values must not themselves
// appear as variant keys mapping elsewhere; Map construction resolves any
// accidental chains so normalization stays idempotent.
var baseSynonyms = map[string]string{
	// Languages and runtimes
	"golang":      "go",
	"go lang":     "go",
	"js":          "javascript",
	"ts":          "typescript",
	"node":        "node.js",
	"nodejs":      "node.js",
	"node js":     "node.js",
	"py":          "python",
	"shell":       "bash",
	"power shell": "powershell",

	// Infrastructure and cloud
	"k8s":                         "kubernetes",
	"amazon web services":         "aws",
	"google cloud platform":       "gcp",
	"google cloud":                "gcp",
	"microsoft azure":             "azure",
	"infrastructure as code":      "iac",
	"platform as a service":       "paas",
	"infrastructure as a service": "iaas",
	"software as a service":       "saas",
	"vm":                          "virtual machine",
	"vms":                         "virtual machine",

	// Data
	"postgres":                  "postgresql",
	"ms sql":                    "sql server",
	"mssql":                     "sql server",
	"structured query language": "sql",
	"extract transform load":    "etl",
	"data base":                 "database",
	"databases":                 "database",

	// Process and practice
	"ci cd":                  "ci/cd",
	"cicd":                   "ci/cd",
	"continuous integration": "ci/cd",
	"continuous delivery":    "ci/cd",
	"continuous deployment":  "ci/cd",
	"quality assurance":      "qa",
	"quality engineering":    "qa",
	"rest apis":              "rest api",
	"restful api":            "rest api",
	"restful apis":           "rest api",
	"web api":                "rest api",
	"web apis":               "rest api",
	"unit testing":           "unit test",
	"unit tests":             "unit test",
	"test automation":        "automated testing",
	"automation testing":     "automated testing",
	"scrum methodology":      "scrum",
	"agile methodology":      "agile",
	"agile methodologies":    "agile",

	// Tooling
	"azure devops services": "azure devops",
	"ado":                   "azure devops",
	"ghe":                   "github",
	"git hub":               "github",
	"ms teams":              "teams",
	"microsoft teams":       "teams",
	"o365":                  "microsoft 365",
	"office 365":            "microsoft 365",
}
