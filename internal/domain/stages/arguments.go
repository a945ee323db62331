package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// ArgsMacro is injected above the first JSNIARGS use.
const ArgsMacro = "#define JSNIARGS(x) JSNIGetArgOfCallback(env, info, x)"

var arguments = rewrite.NewRuleStage(StageArguments,
	rewrite.Sub(`args\[([0-9a-zA-Z]+)\]`, `JSNIARGS(\1)`),
	rewrite.InsertOnce(`JSNIARGS`, ArgsMacro),
	rewrite.Sub(`args\.Length\(\)`, "JSNIGetArgsLengthOfCallback(env, info)"),
)

// callbackInfo runs last-but-one: every stage before it still looks for the
// args token by name.
var callbackInfo = rewrite.NewRuleStage(StageCallbackInfo,
	rewrite.Sub(`args`, "info"),
	rewrite.Sub(`\(args,`, "(info,"),
)
