// Package constraint declares the checks a value object field can be held to
// and the engine that evaluates them.
//
// A Constraint is a closed, tagged value built by one explicit constructor per
// kind (NotBlank, Email, Length, Type, URL, UUID, Choice, Range). Business code
// depends on the Engine interface; the concrete implementation backed by
// go-playground/validator v10 lives in this package and renders messages with
// a universal-translator.
//
// Each constraint is evaluated on its own, so a value that breaks three
// constraints yields three violations in declaration order.
package constraint
