package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"prism/src/model"
	"prism/src/util"
)

// AnalyzeBatch analyzes items with at most concurrency in flight. Results
// keep input order; a failing item records its error and never affects its
// siblings.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, items []model.RequirementText, req model.GenerationRequest, concurrency int) []model.BatchItem {
	if concurrency < 1 {
		concurrency = 1
	}
	startTime := time.Now()
	util.Info("Analyzing %d requirements (parallel: %d)", len(items), concurrency)

	out := make([]model.BatchItem, len(items))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, item := range items {
		g.Go(func() error {
			out[i] = p.analyzeItem(ctx, item, req)
			return nil
		})
	}
	// items never return errors; failures live on the BatchItem
	_ = g.Wait()

	failed := 0
	for _, item := range out {
		if item.Err != nil {
			failed++
		}
	}
	util.Info("Batch complete: %d succeeded, %d failed (took %v)", len(out)-failed, failed, time.Since(startTime))
	return out
}

func (p *Pipeline) analyzeItem(ctx context.Context, text model.RequirementText, req model.GenerationRequest) model.BatchItem {
	item := model.BatchItem{Source: text.Source}
	if err := ctx.Err(); err != nil {
		item.Err = err
		item.Error = err.Error()
		return item
	}

	result, err := p.Analyze(ctx, text, req)
	if err != nil {
		util.Error("Analysis of %s failed: %v", text.Source, err)
		item.Err = err
		item.Error = err.Error()
		return item
	}
	item.Result = result
	return item
}

// NewBatchReport summarizes batch items under a fresh run id
func NewBatchReport(items []model.BatchItem) *model.BatchReport {
	report := &model.BatchReport{
		RunID: uuid.NewString(),
		Items: items,
	}
	for _, item := range items {
		if item.Err != nil || item.Error != "" {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	return report
}
