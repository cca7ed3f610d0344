/*
Package dsl provides a fluent builder for constructing transducer tables in Go.

It is an alternative to writing AT&T files by hand, useful for tests, generated
lexicons and small rule sets embedded in a program.

Example usage:

	b := dsl.New()

	b.State("0").On("c", "c", "1")
	b.State("1").On("a", "a", "2")
	b.State("2").On("t", "t", "3")
	b.State("3").On("<N>", domain.Epsilon, "4")
	b.State("4").
		On("<PL>", "s", "5").
		On("<SG>", domain.Epsilon, "5")
	b.State("5").Accepting()

	table, err := b.Build()

The first state mentioned becomes the start state, just as the first row of
an AT&T file does, unless another state calls Start.
*/
package dsl
