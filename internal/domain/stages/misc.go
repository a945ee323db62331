package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

var receiver = rewrite.NewRuleStage(StageReceiver,
	rewrite.Sub(`(`+identifier+`*)\.This\(\)`, `JSNIGetThisOfCallback(env, \1)`),
	rewrite.Sub(`(`+identifier+`*)\.Holder\(\)`, `JSNIGetThisOfCallback(env, \1)`),
)

// UnsupportedFunction prefixes lines calling an API JSNI has no equivalent for.
const UnsupportedFunction = "//We do not support the function:"

var classInit = rewrite.NewRuleStage(StageClassInit,
	rewrite.Sub(`FunctionTemplate::New`, "JSNINewFunction"),
	rewrite.SubUnless(`(.*)SetClassName(.*)`, UnsupportedFunction+`\1SetClassName\2`, UnsupportedFunction),
	rewrite.Sub(`->GetFunction\(\)`, ""),
	rewrite.Sub(`(`+identifier+`*)\.Reset\((.*), (.*)\)`,
		`\1 = JSNINewGlobalValue(\2, \3)/* TODO \1 should be released manually in case of memory leak. */`),
	rewrite.Sub(identifier+`*\.IsConstructCall\(\)`, "true/* We do not support IsConstructCall api*/"),
)

var properties = rewrite.NewRuleStage(StageProperties,
	rewrite.Sub(`(`+identifier+`*)->Set\(String::NewFromUtf8\(.*, (".*")\), (.*)\)`, `JSNISetProperty(env, \1, \2, \3);`),
)

var arrays = rewrite.NewRuleStage(StageArrays,
	rewrite.Sub(`(`+identifier+`*Array`+identifier+`*)->Length\(\)`, `JSNIGetArrayLength(env, \1)`),
	rewrite.Sub(`(`+identifier+`*Array`+identifier+`*)->Get\((.*)\)`, `JSNIGetArrayElement(env, \1, \2)`),
)

// node::MakeCallback(isolate, recv, func, ...) takes the function before the
// receiver in JSNI.
var callbacks = rewrite.NewRuleStage(StageCallbacks,
	rewrite.Sub(`MakeCallback\((`+identifier+`*), (`+identifier+`*), (`+identifier+`*),`, `JSNICallFunction(\1, \3, \2,`),
)

var isolateToken = rewrite.NewRuleStage(StageContext,
	rewrite.Sub(`isolate`, "env"),
)
