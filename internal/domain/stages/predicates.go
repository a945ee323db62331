package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// TypeChecks lists the V8 Is<Type>() calls that map one-to-one onto
// JSNIIs<Type>(env, value).
var TypeChecks = []string{
	"Object", "Symbol", "Undefined", "Null",
	"Boolean", "Number", "String",
	"Function", "Array", "TypedArray",
}

// NumberCoercions become JSNIToCDouble.
var NumberCoercions = []string{"Int32Value", "NumberValue", "IntegerValue", "Uint32Value"}

var predicates = rewrite.NewRuleStage(StagePredicates, predicateRules()...)

func predicateRules() []rewrite.Rule {
	isTypes := make([]string, 0, len(TypeChecks))
	for _, t := range TypeChecks {
		isTypes = append(isTypes, "Is"+t)
	}

	var rules []rewrite.Rule

	rules = append(rules, zeroArgCalls(isTypes, `JSNI\2`, "->")...)
	rules = append(rules, zeroArgCalls([]string{"IsInt32", "IsUint32"}, "JSNIIsNumber", "->")...)
	rules = append(rules, zeroArgCalls(NumberCoercions, "JSNIToCDouble", "->")...)
	rules = append(rules, zeroArgCalls([]string{"BooleanValue"}, "JSNIToCBool", "->")...)
	rules = append(rules, zeroArgCalls([]string{"IsEmpty"}, `JSNI\2`, `\.`)...)

	return rules
}

// zeroArgCalls turns recv<call>Name() into dest(env, recv). Receivers that
// are themselves single-argument calls, like JSNIARGS(0), are tried first.
// dest may use \2 to reuse the method name.
func zeroArgCalls(names []string, dest, call string) []rewrite.Rule {
	rules := make([]rewrite.Rule, 0, 2*len(names))
	template := dest + `(env, \1)`

	for _, name := range names {
		rules = append(rules, rewrite.Sub(`(`+identifier+`+\(`+identifier+`+\))`+call+`(`+name+`)\(\)`, template))
	}

	for _, name := range names {
		rules = append(rules, rewrite.Sub(`(`+identifier+`*)`+call+`(`+name+`)\(\)`, template))
	}

	return rules
}
