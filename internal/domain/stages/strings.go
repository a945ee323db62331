package stages

import "github.com/mouse-blink/v8tojsni/internal/domain/rewrite"

const utf8Buffer = `char \1[JSNIGetStringUtf8Length(env, \2) + 1]; JSNIGetStringUtf8Chars(env, \2, \1, -1)`

// String::Utf8Value name(value) becomes a stack buffer sized by a length
// query and filled in place. The second rule accepts a call as the value,
// e.g. String::Utf8Value s(JSNIARGS(0)).
var utf8Strings = rewrite.NewRuleStage(StageUtf8Strings,
	rewrite.Sub(`String::Utf8Value (`+identifier+`*)\((`+identifier+`*)\)`, utf8Buffer),
	rewrite.Sub(`String::Utf8Value (`+identifier+`*)\(([a-zA-Z0-9_(]*\))\)`, utf8Buffer),
)

// The second argument may hold one level of parentheses, so the match stops
// at the call's own closing parenthesis instead of the last one on the line.
var stringConstruction = rewrite.NewRuleStage(StageStringConstruction,
	rewrite.Sub(`String::NewFromUtf8\(([^,]*), ([^()]*(?:\([^()]*\))?[^()]*)\)`, `JSNINewStringFromUtf8(\1, \2, -1)`),
)
