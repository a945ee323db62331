package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// cleanup drops V8/node constructs that have no JSNI counterpart. The v8::
// and node:: qualifiers must go before the handle-scope stage looks for
// " HandleScope".
var cleanup = rewrite.NewRuleStage(StageCleanup,
	rewrite.Delete(`=.*Isolate::GetCurrent`),
	rewrite.Sub(`->ToObject\(\)`, ""),
	rewrite.Sub(`Local<.*Cast`, ""),
	rewrite.Sub(`Handle<.*Cast`, ""),
	rewrite.Sub(`v8::`, ""),
	rewrite.Sub(`node::`, ""),
	rewrite.Delete(`using namespace.*node;`),
	rewrite.Delete(`using namespace.*v8;`),
	rewrite.Delete(`#include.*v8.*.h`),
	rewrite.Sub(`#include.*node\.h>`, "#include <jsni.h>"),
	rewrite.Delete(`#include.*node.*.h`),
	rewrite.Delete(`NODE_MODULE\(`),
	rewrite.Delete(` = args\.GetIsolate\(\)`),
)

var addon = rewrite.NewRuleStage(StageAddon,
	rewrite.Sub(`NODE_SET_METHOD\(exports`, "JSNIRegisterMethod(env, exports"),
)
