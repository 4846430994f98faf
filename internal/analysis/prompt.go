package analysis

import (
	"fmt"
	"path/filepath"
	"strings"
)

const systemPrompt = `You are an expert code reviewer and security analyst. Your job is to analyze code for:

1. CODE QUALITY: Readability, maintainability, best practices, design patterns
2. SECURITY: Vulnerabilities, unsafe practices, potential exploits
3. PERFORMANCE: Efficiency, optimization opportunities, resource usage

You must respond with a valid JSON object containing:
{
    "overall_score": <number 1-10>,
    "scores": {
        "Quality": <number 1-10>,
        "Security": <number 1-10>,
        "Performance": <number 1-10>
    },
    "issues": [
        {
            "type": "Quality|Security|Performance",
            "severity": "Low|Medium|High|Critical",
            "description": "Clear description of the issue",
            "line": <line number or null>,
            "code": "problematic code snippet or null"
        }
    ],
    "recommendations": [
        "Specific actionable recommendation"
    ],
    "summary": "Brief summary of the analysis"
}

Be thorough but constructive. Focus on actionable feedback.`

// SystemPrompt returns the fixed system instruction for the model. It is
// constant across calls.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the user prompt for a request. It is a pure
// function of its inputs: no truncation, no length validation (size limits
// are enforced before the request is built).
func BuildUserPrompt(req Request) string {
	var aspects []string
	if req.IncludeStyle {
		aspects = append(aspects, "code quality and style")
	}
	if req.IncludeSecurity {
		aspects = append(aspects, "security vulnerabilities")
	}
	if req.IncludePerformance {
		aspects = append(aspects, "performance optimization")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Please analyze this %s code file (%s) for %s.\n\n",
		req.Language, req.Filename, strings.Join(aspects, ", "))

	b.WriteString("Code to analyze:\n")
	fmt.Fprintf(&b, "```%s\n", req.Language)
	b.WriteString(req.Code)
	b.WriteString("\n```\n\n")

	b.WriteString(`Focus on:
- Code quality: readability, maintainability, best practices, naming conventions
- Security: potential vulnerabilities, unsafe operations, input validation
- Performance: efficiency, algorithm complexity, resource usage
- Specific issues with line numbers when possible
- Actionable recommendations for improvement

Provide scores from 1-10 (10 being excellent) and specific, actionable feedback.`)

	return b.String()
}

// BuildPrompts returns the system and user prompts for a request.
func BuildPrompts(req Request) (string, string) {
	return SystemPrompt(), BuildUserPrompt(req)
}

// langByExt maps file extensions to the language label used in prompts.
var langByExt = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".jsx":   "javascript",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".h":     "c",
	".hpp":   "cpp",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
}

// DetectLanguage derives the language from the filename extension. Unknown
// extensions fall back to "python".
func DetectLanguage(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := langByExt[ext]; ok {
		return lang
	}
	return "python"
}
