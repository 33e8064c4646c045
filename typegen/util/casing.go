package util

import "github.com/iancoleman/strcase"

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms (e.g., "UserID" -> "user_id")
func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// ToPascalCase converts snake_case, kebab-case or camelCase to PascalCase
func ToPascalCase(s string) string {
	return strcase.ToCamel(s)
}

// ToCamelCase converts snake_case, kebab-case or PascalCase to camelCase.
// A run of capitals is folded ("UserID" -> "userId")
func ToCamelCase(s string) string {
	return strcase.ToLowerCamel(s)
}
