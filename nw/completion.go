package main

import (
	"github.com/etnz/networth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the nw command line for shell completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	goalFlags := map[string]complete.Predictor{
		"start":  predict.Something,
		"fixed":  predict.Something,
		"gross":  predict.Something,
		"net":    predict.Something,
		"rate":   predict.Something,
		"target": predict.Something,
	}
	withJSON := map[string]complete.Predictor{"json": predict.Nothing}
	for k, v := range goalFlags {
		withJSON[k] = v
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"ledger":       {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"institutions": {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"stats":        {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"rates":        {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"goals":        {Flags: withJSON},
			"assist":       {Flags: goalFlags},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  predict.Set(append(topics, "*")),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"currency":    predict.Set{"BRL", "USD", "EUR"},
			"rate-url":    predict.Something,
			"cache-dir":   predict.Dirs("*"),
			"verbose":     predict.Nothing,
		},
	}
}
