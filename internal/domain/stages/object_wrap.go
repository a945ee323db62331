package stages

import (
	"strings"

	"github.com/mouse-blink/v8tojsni/internal/domain/rewrite"
)

// ObjectWrapGuard is the include guard opening the injected adapter class.
const ObjectWrapGuard = "#ifndef CLASS_JSNI_OBJECT_WRAP"

// ObjectWrapSource stands in for node::ObjectWrap, which JSNI does not ship.
var ObjectWrapSource = strings.Join([]string{
	ObjectWrapGuard,
	"#define CLASS_JSNI_OBJECT_WRAP",
	"class jsniObjectWrap",
	"{",
	"public:",
	"    jsniObjectWrap() {}",
	"    // Must be virtual because this is a base class.",
	"    virtual ~jsniObjectWrap() {}",
	"    template <class T>",
	"    static inline T* Unwrap(JSNIEnv* env, JSValueRef handle) {",
	"        assert(!JSNIIsEmpty(env, handle));",
	`        JSValueRef wrap_object = JSNIGetProperty(env, handle, "__wrap_object__");`,
	"        void* ptr = JSNIGetInternalField(env, wrap_object, 0);",
	"        jsniObjectWrap* wrap = static_cast<jsniObjectWrap*>(ptr);",
	"        return static_cast<T*>(wrap);",
	"    }",
	"    void Wrap(JSNIEnv* env, JSValueRef handle) {",
	"        assert(global_handle_ == nullptr);",
	"        // The handle may have no internal field, so wrap it in an object that has one.",
	"        JSValueRef wrap_object = JSNINewObjectWithInternalField(env, 1);",
	"        JSNISetInternalField(env, wrap_object, 0, this);",
	`        JSNISetProperty(env, handle, "__wrap_object__", wrap_object);`,
	"",
	"        global_handle_ = JSNINewGlobalValue(env, wrap_object);",
	"        JSNISetGCCallback(env, global_handle_, this, WeakCallback);",
	"    }",
	"    JSValueRef handle(JSNIEnv* env) {",
	"        assert(global_handle_ != nullptr);",
	"        return JSNIGetGlobalValue(env, global_handle_);",
	"    }",
	"private:",
	"    static void WeakCallback(JSNIEnv* env, void* data) {",
	"        jsniObjectWrap* wrap = reinterpret_cast<jsniObjectWrap*>(data);",
	"        // JSNI releases global_handle_ itself.",
	"        delete wrap;",
	"    }",
	"    JSGlobalValueRef global_handle_ = nullptr;",
	"};",
	"#endif",
}, "\n")

// The optional (env, ) groups keep re-runs from adding a second env argument.
var objectWrapUses = rewrite.NewRuleStage(StageObjectWrap,
	rewrite.Sub(` ObjectWrap`, " jsniObjectWrap"),
	rewrite.Sub(`(^|[^a-zA-Z0-9_])ObjectWrap::Unwrap`, `\1jsniObjectWrap::Unwrap`),
	rewrite.Sub(`(->handle)\([a-zA-Z0-9_(]*\)`, `\1(env)`),
	rewrite.Sub(`(->Wrap\()(?:env, )?`, `\1env, `),
	rewrite.Sub(`(::Unwrap)(<`+identifier+`*>)\((?:env, )?`, `\1\2(env, `),
)

var objectWrapInjection = rewrite.MustCompile(rewrite.InsertOnce(`public.*ObjectWrap`, ObjectWrapSource))

// ObjectWrapStage injects the adapter class above the first class deriving
// from ObjectWrap, then points every use site at it.
type ObjectWrapStage struct {
	inject bool
}

// NewObjectWrapStage builds the stage. With inject false only the use sites
// are rewritten.
func NewObjectWrapStage(inject bool) *ObjectWrapStage {
	return &ObjectWrapStage{inject: inject}
}

// Name returns the stage name.
func (s *ObjectWrapStage) Name() string {
	return StageObjectWrap
}

// Apply injects, when enabled, and then rewrites use sites.
func (s *ObjectWrapStage) Apply(lines []string) ([]string, int) {
	out := lines
	changes := 0

	if s.inject {
		out, changes = objectWrapInjection.Apply(out)
	}

	out, uses := objectWrapUses.Apply(out)

	return out, changes + uses
}

// Rules counts the use-site rules plus the injection when enabled.
func (s *ObjectWrapStage) Rules() int {
	if s.inject {
		return objectWrapUses.Rules() + 1
	}

	return objectWrapUses.Rules()
}

// LineStable is true only when nothing is injected.
func (s *ObjectWrapStage) LineStable() bool {
	return !s.inject
}
