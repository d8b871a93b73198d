// Package report holds the rows a recipe produces about its ingredients.
//
// Every ingredient appends its own rows through Describe, so the report never
// needs to know the concrete ingredient kinds:
//
//	r := report.New(totalFlour)
//	for _, ing := range ingredients {
//	    ing.Describe(r, recipeTotal)
//	}
//	_ = r.WriteTable(os.Stdout)
//
// Rows serialize to JSON and YAML; WriteTable renders an aligned text table.
package report
