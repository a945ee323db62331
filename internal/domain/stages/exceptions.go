package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// Throw functions of the JSNI dialect.
const (
	ThrowError     = "JSNIThrowErrorException"
	ThrowTypeError = "JSNIThrowTypeErrorException"
)

// ThrowKinds maps each V8 Exception factory to the JSNI throw call.
var ThrowKinds = []struct {
	Factory string
	Throw   string
}{
	{Factory: "RangeError", Throw: ThrowError},
	{Factory: "ReferenceError", Throw: ThrowError},
	{Factory: "SyntaxError", Throw: ThrowError},
	{Factory: "TypeError", Throw: ThrowTypeError},
	{Factory: "Error", Throw: ThrowError},
}

var exceptions = rewrite.NewRuleStage(StageExceptions, exceptionRules()...)

func exceptionRules() []rewrite.Rule {
	rules := []rewrite.Rule{
		rewrite.Delete(`TryCatch`),
		rewrite.Sub(identifier+`*\.HasCaught\(\)`, "JSNIHasException(env)"),
	}

	for _, kind := range ThrowKinds {
		rules = append(rules, rewrite.Sub(
			`isolate->ThrowException\(Exception::`+kind.Factory+`\(String::NewFromUtf8\(isolate,(.*)\)\)\)`,
			kind.Throw+`(env,\1)`,
		))
	}

	return rules
}

var fatalException = rewrite.NewRuleStage(StageFatalException,
	rewrite.Sub(`FatalException\(.*\)`, `printf("Fatal error: %s", __func__);exit(1)`),
)
