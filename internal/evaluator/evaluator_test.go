package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehnsucht13/zai-pl/internal/evaluator"
	"github.com/sehnsucht13/zai-pl/internal/lexer"
	"github.com/sehnsucht13/zai-pl/internal/parser"
)

// runSource lexes, parses and evaluates input in a fresh environment
// with the builtins registered. It returns the last statement's value
// and everything printed.
func runSource(t *testing.T, input string) (evaluator.Object, string) {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	require.NoError(t, err)
	program, err := parser.Parse(tokens, input)
	require.NoError(t, err)

	env := evaluator.NewEnvironmentStack()
	evaluator.RegisterBuiltins(env.Global())
	eval := evaluator.New(env)
	var out bytes.Buffer
	eval.Out = &out

	result := eval.Eval(program)
	require.Equal(t, 1, env.Depth(), "scope stack must be balanced after evaluation")
	return result, out.String()
}

func runExpectError(t *testing.T, input string) *evaluator.Error {
	t.Helper()
	result, _ := runSource(t, input)
	errObj, ok := result.(*evaluator.Error)
	require.True(t, ok, "input %q expected an error, got %v", input, result)
	return errObj
}

func printed(t *testing.T, input string) string {
	t.Helper()
	result, out := runSource(t, input)
	if errObj, ok := result.(*evaluator.Error); ok {
		t.Fatalf("input %q failed: %s", input, errObj.Inspect())
	}
	return strings.TrimSuffix(out, "\n")
}

func TestArithmeticPrecedenceScenario(t *testing.T) {
	assert.Equal(t, "7", printed(t, "print 1 + 2 * 3;"))
}

func TestWhileWithAssignmentScenario(t *testing.T) {
	out := printed(t, "let i = 0; while (i < 3) { print i; i += 1; }")
	assert.Equal(t, "0\n1\n2", out)
}

func TestClosureCounterScenario(t *testing.T) {
	src := `
func mk() { let n = 0; func f() { n += 1; return n; } return f; }
let g = mk(); print g(); print g(); print g();
`
	assert.Equal(t, "1\n2\n3", printed(t, src))
}

func TestClassWithConstructorScenario(t *testing.T) {
	src := `
class C { func constructor(x) { this.x = x; } func get() { return this.x; } }
let c = C(42); print c.get();
`
	assert.Equal(t, "42", printed(t, src))
}

func TestSwitchFallThroughScenario(t *testing.T) {
	src := `switch (2) { case 1: print "one"; case 2: print "two"; break; case 3: print "three"; default: print "d"; }`
	assert.Equal(t, "two", printed(t, src))
}

func TestStringConcatAndEqualityScenario(t *testing.T) {
	out := printed(t, `print "a" + "b"; print ("ab" == "a" + "b");`)
	assert.Equal(t, "ab\ntrue", out)
}

func TestSwitchWithoutMatchRunsDefault(t *testing.T) {
	src := `switch (9) { case 1: print "one"; default: print "d"; }`
	assert.Equal(t, "d", printed(t, src))
}

func TestSwitchFallsThroughIntoDefault(t *testing.T) {
	src := `switch (1) { case 1: print "one"; default: print "d"; }`
	assert.Equal(t, "one\nd", printed(t, src))
}

func TestIfElifElse(t *testing.T) {
	src := `
let x = 2;
if (x == 1) { print "one"; } elif (x == 2) { print "two"; } else { print "other"; }
`
	assert.Equal(t, "two", printed(t, src))
}

func TestElselessIfWithFalseConditionYieldsNothing(t *testing.T) {
	result, out := runSource(t, "if (false) { print 1; }")
	assert.Nil(t, result)
	assert.Empty(t, out)
}

func TestDoWhileRunsBodyAtLeastOnce(t *testing.T) {
	assert.Equal(t, "0", printed(t, "let i = 0; do { print i; i += 1; } while (i < 1);"))
	assert.Equal(t, "0\n1\n2", printed(t, "let i = 0; do { print i; i += 1; } while (i < 3);"))
}

func TestBreakAndContinueInLoops(t *testing.T) {
	src := `
let i = 0;
while (true) { i += 1; if (i == 3) { break; } }
print i;
`
	assert.Equal(t, "3", printed(t, src))

	src = `
let i = 0;
let total = 0;
while (i < 5) { i += 1; if (mod(i, 2) == 0) { continue; } total += i; }
print total;
`
	assert.Equal(t, "9", printed(t, src))
}

func TestReturnInsideLoopBubblesToFunction(t *testing.T) {
	src := `
func find() { let i = 0; while (true) { i += 1; if (i == 4) { return i; } } }
print find();
`
	assert.Equal(t, "4", printed(t, src))
}

func TestMutualRecursionInSameScope(t *testing.T) {
	src := `
func even(n) { if (n == 0) { return true; } return odd(n - 1); }
func odd(n) { if (n == 0) { return false; } return even(n - 1); }
print even(10); print odd(10);
`
	assert.Equal(t, "true\nfalse", printed(t, src))
}

func TestBlockScoping(t *testing.T) {
	errObj := runExpectError(t, "{ let hidden = 1; } print hidden;")
	assert.Contains(t, errObj.Message, "Variable 'hidden' is not defined!")

	src := `
let x = 1;
{ let x = 2; print x; }
print x;
`
	assert.Equal(t, "2\n1", printed(t, src))
}

func TestFunctionWithoutReturnYieldsNil(t *testing.T) {
	assert.Equal(t, "nil", printed(t, "func noop() { } print noop();"))
	assert.Equal(t, "nil", printed(t, "func bare() { return; } print bare();"))
}

func TestArityMismatch(t *testing.T) {
	errObj := runExpectError(t, "func f(a, b) { return a; } f(1);")
	assert.Contains(t, errObj.Message, "accepts only 2 arguments but 1 were given")
}

func TestUndefinedVariable(t *testing.T) {
	errObj := runExpectError(t, "print ghost;")
	assert.Contains(t, errObj.Message, "Variable 'ghost' is not defined!")
}

func TestReassignUninitializedVariable(t *testing.T) {
	errObj := runExpectError(t, "ghost = 5;")
	assert.Contains(t, errObj.Message, "has not been initialized")
}

func TestTopLevelFlowSignalsAreRuntimeErrors(t *testing.T) {
	errObj := runExpectError(t, "break;")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)
	errObj = runExpectError(t, "continue;")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)
	errObj = runExpectError(t, "return 1;")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)
}

func TestNilEquality(t *testing.T) {
	assert.Equal(t, "true", printed(t, "print (nil == nil);"))
	assert.Equal(t, "false", printed(t, "print (nil == 0);"))
}

func TestEqualityIsReflexiveOnAtoms(t *testing.T) {
	for _, atom := range []string{"0", "42", "3.5", "true", "false", "\"s\"", "\"\"", "nil"} {
		assert.Equal(t, "true", printed(t, "print ("+atom+" == "+atom+");"), "atom %s", atom)
	}
}

func TestArrayBehavior(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", printed(t, "print [1, 2, 3];"))
	assert.Equal(t, "2", printed(t, "let a = [1, 2, 3]; print a[1];"))
	assert.Equal(t, "true", printed(t, "print ([1, 2] == [1, 2]);"))
	assert.Equal(t, "false", printed(t, "print ([1, 2] == [1, 2, 3]);"))

	// Empty arrays are falsy, non-empty truthy.
	assert.Equal(t, "empty", printed(t, `if ([]) { print "full"; } else { print "empty"; }`))
	assert.Equal(t, "full", printed(t, `if ([0]) { print "full"; } else { print "empty"; }`))
}

func TestArrayElementAssignment(t *testing.T) {
	assert.Equal(t, "[1, 9, 3]", printed(t, "let a = [1, 2, 3]; a[1] = 9; print a;"))
}

func TestArrayIndexOutOfRange(t *testing.T) {
	errObj := runExpectError(t, "let a = [1]; print a[5];")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)

	errObj = runExpectError(t, "let a = [1]; a[5] = 0;")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)
}

func TestIndexingNonArray(t *testing.T) {
	errObj := runExpectError(t, "let x = 5; print x[0];")
	assert.Contains(t, errObj.Message, "is not an array")
}

func TestArrayAddAssign(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 4]", printed(t, "let a = [1, 2]; a += [3, 4]; print a;"))
	assert.Equal(t, "[1, 2, 5]", printed(t, "let a = [1, 2]; a += 5; print a;"))
}

func TestStringOperations(t *testing.T) {
	assert.Equal(t, "ababab", printed(t, `print "ab" * 3;`))
	assert.Equal(t, "ababab", printed(t, `print 3 * "ab";`))
	assert.Equal(t, "true", printed(t, `print ("abc" < "abd");`))
	assert.Equal(t, "3", printed(t, `print len("abc");`))
}

func TestDivisionTypeError(t *testing.T) {
	errObj := runExpectError(t, `print "a" / 2;`)
	assert.Equal(t, evaluator.TypeErrorKind, errObj.Kind)
	assert.Contains(t, errObj.Message, "/")
	assert.Contains(t, errObj.Message, "string")
}

func TestDivisionByZero(t *testing.T) {
	errObj := runExpectError(t, "print 1 / 0;")
	assert.Equal(t, evaluator.RuntimeErrorKind, errObj.Kind)
}

func TestBooleanArithmetic(t *testing.T) {
	assert.Equal(t, "2", printed(t, "print true + 1;"))
	assert.Equal(t, "1", printed(t, "print true + false;"))
	assert.Equal(t, "-1", printed(t, "print -true;"))
	assert.Equal(t, "true", printed(t, "print (true > false);"))
}

func TestLogicAndTruthiness(t *testing.T) {
	assert.Equal(t, "true", printed(t, "print (1 && \"x\");"))
	assert.Equal(t, "false", printed(t, "print (0 || \"\");"))
	assert.Equal(t, "true", printed(t, "print (nil || 1);"))
	assert.Equal(t, "false", printed(t, "print !1;"))
	assert.Equal(t, "true", printed(t, "print !nil;"))
}

func TestIncrDecr(t *testing.T) {
	assert.Equal(t, "6\n6", printed(t, "let x = 5; print x++; print x;"))
	assert.Equal(t, "4\n4", printed(t, "let x = 5; print x--; print x;"))
	assert.Equal(t, "[1, 3]", printed(t, "let a = [1, 2]; a[1]++; print a;"))
}

func TestPrintForms(t *testing.T) {
	assert.Equal(t, "nil", printed(t, "print nil;"))
	assert.Equal(t, "<function object f>", printed(t, "func f() { } print f;"))
	assert.Equal(t, "<class definition object C>", printed(t, "class C { } print C;"))
	assert.Equal(t, "<class instance object C>", printed(t, "class C { } let c = C(); print c;"))
	assert.Equal(t, "<native function object len>", printed(t, "print len;"))
}

func TestClassFieldsAreMutable(t *testing.T) {
	src := `
class Counter {
	func constructor() { this.n = 0; }
	func inc() { this.n += 1; }
	func get() { return this.n; }
}
let c = Counter();
c.inc(); c.inc(); c.inc();
print c.get();
print c.n;
`
	assert.Equal(t, "3\n3", printed(t, src))
}

func TestTwoInstancesDoNotShareState(t *testing.T) {
	src := `
class Box { func constructor(v) { this.v = v; } }
let a = Box(1);
let b = Box(2);
print a.v; print b.v;
`
	assert.Equal(t, "1\n2", printed(t, src))
}

func TestClassWithoutConstructorRejectsArguments(t *testing.T) {
	errObj := runExpectError(t, "class C { } let c = C(1);")
	assert.Contains(t, errObj.Message, "does not have a constructor")
}

func TestMethodsCallOtherMethodsThroughThis(t *testing.T) {
	src := `
class Greeter {
	func name() { return "zai"; }
	func greet() { return "hello " + this.name(); }
}
let g = Greeter();
print g.greet();
`
	assert.Equal(t, "hello zai", printed(t, src))
}

func TestCallingNonCallable(t *testing.T) {
	errObj := runExpectError(t, "let x = 5; x();")
	assert.Contains(t, errObj.Message, "not callable")
}

func TestNativeFunctions(t *testing.T) {
	assert.Equal(t, "8", printed(t, "print pow(2, 3);"))
	assert.Equal(t, "1", printed(t, "print mod(7, 2);"))
	assert.Equal(t, "number", printed(t, "print type(1);"))
	assert.Equal(t, "string", printed(t, "print type(\"s\");"))
	assert.Equal(t, "array", printed(t, "print type([]);"))
	// Builtins answer type mismatches, and mod a zero operand, with nil.
	assert.Equal(t, "nil", printed(t, "print len(5);"))
	assert.Equal(t, "nil", printed(t, "print mod(1, 0);"))
}

func TestEvaluationOrderIsLeftToRight(t *testing.T) {
	src := `
func trace(label, value) { print label; return value; }
print trace("l", 1) + trace("r", 2);
`
	assert.Equal(t, "l\nr\n3", printed(t, src))
}

func TestExpressionStatementYieldsItsValue(t *testing.T) {
	result, _ := runSource(t, "1 + 2;")
	require.IsType(t, &evaluator.Integer{}, result)
	assert.Equal(t, int64(3), result.(*evaluator.Integer).Value)
}

func TestBlockWrappedExpressionMatchesBareOne(t *testing.T) {
	bare := printed(t, "print 2 * 3 + 4;")
	wrapped := printed(t, "{ print 2 * 3 + 4; }")
	assert.Equal(t, bare, wrapped)
}

func TestShadowingInFunctionDoesNotLeak(t *testing.T) {
	src := `
let x = 1;
func f() { let x = 99; return x; }
print f();
print x;
`
	assert.Equal(t, "99\n1", printed(t, src))
}

func TestClosuresShareTheirDefiningScope(t *testing.T) {
	src := `
func mk() {
	let n = 0;
	func inc() { n += 1; return n; }
	func get() { return n; }
	return [inc, get];
}
let fns = mk();
fns[0](); fns[0]();
print fns[1]();
`
	assert.Equal(t, "2", printed(t, src))
}
