package lispytest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"lexical scope", TestSequence{
			{"(define x 1)", "1"},
			{"(define f (lambda (y) (+ x y)))", "(lambda (y) (+ x y))"},
			{"((lambda (x) (f 2)) 100)", "3"},
			{"(((lambda (x) (lambda () (+ x 2))) 3))", "5"},
			{"y", "unbound-symbol: y"},
		}},
		{"shadowing", TestSequence{
			{"(define x 1)", "1"},
			{"((lambda (x) (begin (define x 2) x)) 0)", "2"},
			{"x", "1"},
			{"((lambda (y) (begin (define x 3) x)) 0)", "3"},
			{"x", "1"},
			{"((lambda (y) (set! x 4)) 0)", "4"},
			{"x", "4"},
		}},
		{"closures", TestSequence{
			{"(define make-counter (lambda (n) (lambda () (begin (set! n (+ n 1)) n))))", "(lambda (n) (lambda () (begin (set! n (+ n 1)) n)))"},
			{"(define c1 (make-counter 0))", "(lambda () (begin (set! n (+ n 1)) n))"},
			{"(define c2 (make-counter 10))", "(lambda () (begin (set! n (+ n 1)) n))"},
			{"(c1)", "1"},
			{"(c1)", "2"},
			{"(c2)", "11"},
			{"(c1)", "3"},
			{"n", "unbound-symbol: n"},
		}},
		{"deep lookup", TestSequence{
			{"(define g 42)", "42"},
			{"(define nest (lambda (n) (if (<= n 0) g (nest (- n 1)))))", "(lambda (n) (if (<= n 0) g (nest (- n 1))))"},
			{"(nest 0)", "42"},
			{"(nest 1)", "42"},
			{"(nest 200)", "42"},
		}},
		{"set! before define", TestSequence{
			{"(set! z 1)", "unbound-symbol: z"},
			{"(define z 1)", "1"},
			{"(set! z 2)", "2"},
			{"z", "2"},
		}},
	}
	RunTestSuite(t, tests)
}
