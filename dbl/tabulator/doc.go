// Package tabulator implements the discrete tabulator double theory: a
// discrete double theory (dbl/discrete) extended with tabulator
// object types. A tabulator Tab(m) of a morphism type m comes with
// projection arrows onto src(m)/tgt(m) and a cone(m) cell witnessing the
// universal square — structure a nontrivial discrete double category cannot
// express, so this theory generalizes dbl/discrete rather than building on
// top of it directly.
//
// ObType, MorType, Arr, and Cell are all represented as opaque strings with
// side tables recording their structure, for the same reason as
// dbl/discrete: ObType and MorType are mutually recursive sum types
// (Tabulator wraps a MorType, Hom wraps an ObType) which Go cannot express
// as mutually-recursive comparable structs without indirection, and a
// pointer-keyed encoding would break structural equality between
// independently-built values denoting the same type. Each variant's
// encoding is canonical — equal semantic values always produce equal
// strings — so equality is free and only decoding needs the side tables.
package tabulator
