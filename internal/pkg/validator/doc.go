// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code depends on the Validator interface so rules and messages stay
// consistent across modules. The concrete implementation wraps
// go-playground/validator v10 with English translations and reports failures
// as an ordered ValidationErrors list (field, rule, message).
//
// Modules extend the rule set at wiring time through Register, for example to
// bind an enumeration to a tag or to attach a struct-level rule such as
// PasswordStrength.
package validator
