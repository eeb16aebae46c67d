// Package diagnostic provides structured mismatch reports and "why this
// matched" explanations for subset comparisons.
//
// Key capabilities:
//   - Missing and extra key reports with the key path
//   - Value and type differences with both sides attached
//   - Key order differences in strict mode
//   - Explanation of loose coercions that made two values equal
package diagnostic
