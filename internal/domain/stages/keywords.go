package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

// TokenPair is one entry of the token rename table.
type TokenPair struct {
	From string // regular expression
	To   string
}

// Tokens is applied top to bottom. Coarse entries (v8, V8) come after the
// ones that still need the longer spelling, and the callback signature
// entries come first so v8 inside them is already gone.
var Tokens = []TokenPair{
	{From: `\(const.*FunctionCallbackInfo<.*Value>.*&`, To: "(JSNIEnv* env, const JSNICallbackInfo "},
	{From: ` const.*FunctionCallbackInfo<.*Value>.*&`, To: " const JSNICallbackInfo "},
	{From: `v8_`, To: "jsni_"},
	{From: `v8`, To: "jsni"},
	{From: `V8`, To: "JSNI"},
	{From: `v8value::`, To: "jsnivalue::"},
	{From: `v8object::`, To: "jsniobject::"},
	{From: `Local<Object>`, To: "JSValueRef"},
	{From: `args\.GetReturnValue\(\)\.Set\(`, To: "JSNISetReturnValue(env, info, "},
	{From: `Null\(isolate`, To: "JSNINewNull(env"},
	{From: `Object::New\(isolate`, To: "JSNINewObject(env"},
	{From: `Number::New\(isolate`, To: "JSNINewNumber(env"},
	{From: `Persistent<` + identifier + `*>`, To: "JSGlobalValueRef"},
}

var keywords = newTokenStage(StageKeywords, Tokens)

func newTokenStage(name string, pairs []TokenPair) *rewrite.RuleStage {
	rules := make([]rewrite.Rule, 0, len(pairs))
	for _, p := range pairs {
		rules = append(rules, rewrite.Sub(p.From, p.To))
	}

	return rewrite.NewRuleStage(name, rules...)
}
