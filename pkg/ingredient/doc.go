// Package ingredient implements the mass accounting of a bread recipe:
// the closed set of ingredient kinds, preferment derivation and the flour
// allocation engine.
//
// # Ingredients
//
// Every kind (FlourMix, Water, Salt, Enrichment, Preferment) satisfies the
// sealed Ingredient interface and reports its flour, water and other mass.
// Tally folds any set of ingredients into recipe totals.
//
// # Preferments
//
// A preferment is built either from its combined weight and hydration
// (NewStarter, NewPoolish), from its flour (NewTangzhong), or as a portion of
// the recipe's total flour (StarterFromPortion and friends). Registry maps
// "<id>:<args>" descriptors such as "starter:10:100" to builders.
//
// # Flour allocation
//
// A FlourMix is built with AddFlour until its fractions total exactly 100%,
// then preferment flour is repurposed from the fractions in insertion order:
//
//	mix := ingredient.NewFlourMix(measure.MustGram(1000))
//	mix, _ = mix.AddFlourDescriptor("white:60")
//	mix, _ = mix.AddFlourDescriptor("rye:40")
//
//	starter, _ := ingredient.DefaultRegistry().Build("starter:10:100", mix.TotalFlour())
//	mix, err := mix.Repurpose(starter)
//	// White 500 g, Rye 400 g, starter flour 100 g
//
// Every operation returns a new value; a failed Repurpose leaves the mix as
// it was.
package ingredient
