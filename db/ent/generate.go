package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent",
			Schema:  "github.com/Muaazbinsaeed/ai-social-support-app-sub001/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
