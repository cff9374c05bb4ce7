package evalbuilder

import (
	"fmt"

	classic "github.com/fixedply/fixedply/pkg/eval/classic"
	material "github.com/fixedply/fixedply/pkg/eval/material"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "classic":
			return classic.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
