package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"microwave-converter/internal/api/models"
	"microwave-converter/internal/convert"
	"microwave-converter/internal/model"
)

const (
	serverName    = "microwave-converter"
	serverVersion = "1.0.0"
)

// Logs go to stderr only; stdout carries the stdio protocol.
func main() {
	s := server.NewMCPServer(serverName, serverVersion)

	tool := mcp.NewTool("convert_microwave_time",
		mcp.WithDescription("Convert microwave cooking time from one wattage to another"),
		mcp.WithNumber(model.FieldOriginalWattage,
			mcp.Required(),
			mcp.Description("The wattage specified in the recipe (watts)"),
			mcp.Min(model.MinWattage),
			mcp.Max(model.MaxWattage),
		),
		mcp.WithNumber(model.FieldTargetWattage,
			mcp.Required(),
			mcp.Description("Your microwave's wattage (watts)"),
			mcp.Min(model.MinWattage),
			mcp.Max(model.MaxWattage),
		),
		mcp.WithNumber(model.FieldOriginalMinutes,
			mcp.Required(),
			mcp.Description("Original cooking time in minutes"),
			mcp.Min(0),
			mcp.Max(model.MaxMinutes),
		),
		mcp.WithNumber(model.FieldOriginalSeconds,
			mcp.Required(),
			mcp.Description("Original cooking time in seconds"),
			mcp.Min(0),
			mcp.Max(model.MaxSeconds),
		),
	)

	engine := convert.New()
	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleConvert(engine, req)
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintln(os.Stderr, "server error:", err)
		os.Exit(1)
	}
}

func handleConvert(engine *convert.Engine, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fields := []string{
		model.FieldOriginalWattage,
		model.FieldTargetWattage,
		model.FieldOriginalMinutes,
		model.FieldOriginalSeconds,
	}
	vals := make(map[string]int, len(fields))
	for _, f := range fields {
		x, err := req.RequireFloat(f)
		if err != nil {
			return mcp.NewToolResultError(f + " is required and must be a number"), nil
		}
		if x != math.Trunc(x) {
			return mcp.NewToolResultError(f + " must be a whole number"), nil
		}
		vals[f] = int(x)
	}

	res, err := engine.Convert(model.ConversionRequest{
		OriginalWattage: vals[model.FieldOriginalWattage],
		TargetWattage:   vals[model.FieldTargetWattage],
		OriginalMinutes: vals[model.FieldOriginalMinutes],
		OriginalSeconds: vals[model.FieldOriginalSeconds],
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload := models.ConvertResponse{
		ConvertedTime:       res.ConvertedTime,
		OriginalTime:        res.OriginalTime,
		Wattages:            res.Wattages,
		PowerRecommendation: res.Recommendation,
		Explanation:         res.Explanation,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
