/*
Package domain contains the core data model of the transducer engine.

It defines the transition table of a finite-state transducer, the reserved
symbols and the error taxonomy shared by every other package. The package is
kept free of I/O: tables are filled by loaders (see package att) or builders
(see package dsl) and consumed read-only by the runtime.

# Key Entities

  - Table: maps (state, input symbol) to an ordered list of (target, output) arcs,
    and records the start state and the accepting states.
  - Key / Arc / Transition: the halves and the expanded form of a transition.
  - Summary: an introspection snapshot of a Table (alphabets, counts).

# Inversion

Table.Invert swaps the input and output symbol of every transition and
returns a new table, so one loaded table can serve generation and analysis
at the same time.
*/
package domain
