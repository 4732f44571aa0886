package policy

import "regexp"

// CompiledPattern holds a pre-compiled secret-detection regex.
type CompiledPattern struct {
	Name  string
	Regex *regexp.Regexp
}

// sensitiveFieldNames are argument keys whose non-empty values are
// treated as credentials regardless of shape.
var sensitiveFieldNames = []string{
	"api_key",
	"apikey",
	"token",
	"access_token",
	"secret",
	"password",
	"passwd",
	"credential",
	"private_key",
}

// secretPatterns match credential material embedded in free text.
var secretPatterns = []*CompiledPattern{
	{Name: "openai_key", Regex: regexp.MustCompile(`sk-[A-Za-z0-9_-]{20,}`)},
	{Name: "aws_access_key", Regex: regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{Name: "bearer_token", Regex: regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/-]{16,}=*`)},
	{Name: "credential_assignment", Regex: regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)\s*[:=]\s*['"]?[^\s'"]{8,}`)},
}

// pathArgKeys are argument keys whose string values are interpreted as
// filesystem paths and checked against the project root.
var pathArgKeys = []string{
	"path",
	"file",
	"file_path",
	"filepath",
	"filename",
	"dir",
	"directory",
	"cwd",
	"target",
	"dest",
	"destination",
	"source",
	"src",
	"output",
}
