// Package stages holds the pattern tables and the ordered stages that migrate
// V8/node addon source to JSNI.
//
// The order of Pipeline is load-bearing: later stages match tokens that
// earlier ones introduce (JSNIARGS, JSNIEnv) or still need tokens that only
// the final stages rename away (isolate, args).
package stages

import (
	"github.com/mouse-blink/v8tojsni/internal/config"
	"github.com/mouse-blink/v8tojsni/internal/domain/rewrite"
)

// Stage names, in pipeline order.
const (
	StageDeclarations       = "declarations"
	StageArguments          = "arguments"
	StageCleanup            = "cleanup"
	StageAddon              = "addon"
	StageHandleScope        = "handle-scope"
	StageConstructors       = "constructors"
	StageKeywords           = "keywords"
	StagePredicates         = "predicates"
	StageExceptions         = "exceptions"
	StageFatalException     = "fatal-exception"
	StageUtf8Strings        = "utf8-strings"
	StageObjectWrap         = "object-wrap"
	StageReceiver           = "receiver"
	StageClassInit          = "class-init"
	StageProperties         = "properties"
	StageArrays             = "arrays"
	StageCallbacks          = "callbacks"
	StageContext            = "context"
	StageCallbackInfo       = "callback-info"
	StageStringConstruction = "string-construction"
)

// identifier matches the characters of a C++ identifier.
const identifier = `[a-zA-Z0-9_]`

// Pipeline returns the migration stages in their fixed order.
func Pipeline(cfg config.Config) []rewrite.Stage {
	return []rewrite.Stage{
		declarations,
		arguments,
		cleanup,
		addon,
		NewHandleScopeStage(),
		constructors,
		keywords,
		predicates,
		exceptions,
		fatalException,
		utf8Strings,
		NewObjectWrapStage(cfg.InjectObjectWrap),
		receiver,
		classInit,
		properties,
		arrays,
		callbacks,
		isolateToken,
		callbackInfo,
		stringConstruction,
	}
}

// Run applies stages to lines in order and returns the final text and the
// edit count of every stage.
func Run(stages []rewrite.Stage, lines []string) ([]string, []int) {
	counts := make([]int, len(stages))
	out := lines

	for i, stage := range stages {
		out, counts[i] = stage.Apply(out)
	}

	return out, counts
}
