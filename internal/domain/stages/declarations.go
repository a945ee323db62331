package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// Local<T> x and Handle<T> x become JSValueRef x. Only simple template
// arguments are recognised; qualified ones (v8::Value) are left alone.
var declarations = rewrite.NewRuleStage(StageDeclarations,
	rewrite.Sub(`Local<`+identifier+`*> `, "JSValueRef "),
	rewrite.Sub(`Handle<`+identifier+`*> `, "JSValueRef "),
)
