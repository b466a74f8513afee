// Command modelcheck validates the trained artifacts without starting the
// service: it loads the encoders and both classifiers, prints the four
// label sets and runs a sample prediction. Exits non-zero when any
// artifact is missing or corrupt.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fintrack/internal/labels"
	"fintrack/internal/ml/classifier"
)

func main() {
	modelsDir := flag.String("models", "models", "Directory holding the trained artifacts")
	risk := flag.String("risk", "Aggressive", "Sample risk label for the smoke prediction")
	horizon := flag.String("horizon", "Long-term", "Sample horizon label for the smoke prediction")
	amount := flag.Float64("amount", 10000, "Sample investment amount")
	flag.Parse()

	fmt.Println("Artifact Validation Tool")
	fmt.Println("========================")

	encoder, err := labels.Load(filepath.Join(*modelsDir, "encoders.json"))
	if err != nil {
		fail(err)
	}

	for _, field := range []labels.Field{labels.FieldRisk, labels.FieldHorizon, labels.FieldStock, labels.FieldFund} {
		fmt.Printf("%-8s %s\n", field+":", strings.Join(encoder.Classes(field), ", "))
	}

	pair, err := classifier.Load(
		filepath.Join(*modelsDir, "stock_model.onnx"),
		filepath.Join(*modelsDir, "mf_model.onnx"),
		encoder,
	)
	if err != nil {
		fail(err)
	}
	defer pair.Close()

	riskCode, err := encoder.Encode(labels.FieldRisk, *risk)
	if err != nil {
		fail(err)
	}
	horizonCode, err := encoder.Encode(labels.FieldHorizon, *horizon)
	if err != nil {
		fail(err)
	}

	features := classifier.Features{
		RiskCode:         riskCode,
		HorizonCode:      horizonCode,
		InvestmentAmount: *amount,
	}

	stockCode, err := pair.PredictStockCategory(features)
	if err != nil {
		fail(err)
	}
	fundCode, err := pair.PredictFundCategory(features)
	if err != nil {
		fail(err)
	}

	stockCategory, err := encoder.Decode(labels.FieldStock, stockCode)
	if err != nil {
		fail(err)
	}
	fundCategory, err := encoder.Decode(labels.FieldFund, fundCode)
	if err != nil {
		fail(err)
	}

	fmt.Println("")
	fmt.Printf("Sample profile:  risk=%s horizon=%s amount=%.0f\n", *risk, *horizon, *amount)
	fmt.Printf("Stock category:  %s\n", stockCategory)
	fmt.Printf("MF category:     %s\n", fundCategory)
	fmt.Println("")
	fmt.Println("All artifacts OK")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
