package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// The isolate argument is swallowed up to the last ", " on the line and
// replaced with env; everything after it is kept.
var constructors = rewrite.NewRuleStage(StageConstructors,
	rewrite.Sub(`Boolean::New\(.*, `, "JSNINewBoolean(env, "),
	rewrite.Sub(`Array::New\(.*, `, "JSNINewArray(env, "),
	rewrite.Sub(`Local<.*>::New\(.*, `, "JSNIGetGlobalValue(env, "),
)
