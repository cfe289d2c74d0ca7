// Package puzzle parses the ASCII-art text puzzle format of spec.md §6.2
// into a ready-to-solve solver.Engine[int]. It plays the role the teacher's
// builder package plays for graphs: a small set of functional-option-style
// collaborators (here, section scanners) applied in sequence to produce a
// fully-populated engine, grounded in builder's Constructor-closure idiom
// and gridgraph's stable "row,col" coordinate model.
//
// Every domain value, whether an arithmetic magic-square cell or a word
// puzzle's letter, is represented as a plain int: letters are their ASCII
// codepoint (spec.md §6.2's set-literal "letters expand over the ASCII
// alphabet" is realized literally as int(rune)). A single concrete value
// type lets one puzzle file freely mix a sum rule over digit cells and a
// word rule over letter cells without a second engine instantiation.
package puzzle
