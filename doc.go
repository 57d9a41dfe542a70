// Package calc implements an exact calculator with units.
//
// Numbers are kept as exact rationals, or as rational multiples of pi and e,
// for as long as possible. Operations that cannot be exact, like sin 1 or
// 2^(1/3), produce approximations, and results say so: "approx. 1.2599210498".
// A result with such a form is computed exactly, so sin(pi/6) is 1/2, pi/pi
// is 1, and e^(i pi) is -1.
//
// The syntax is meant to look like math written in notes. "2 x y" multiplies
// three terms, and "sin x" applies sin to x. "f(x)" without a space is a call,
// which fails when f is a number unless the CallsMultiply option is given.
// Numbers may carry units, as in "3 kg + 200 g" or "60 mi/h -> km/h", and
// results can be converted to other units, bases, and formats: "255 to hex",
// "1/3 as 5 dp". Functions are written "\x.x^2" or "x:x^2", and a line like
// "f = \x.x^2" defines a variable in a Context for later lines.
//
// Long computations check an Interrupt and stop with ErrInterrupted when it
// is signaled. Every other error is a problem with the input.
package calc
