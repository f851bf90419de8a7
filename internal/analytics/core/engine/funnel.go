// Package engine holds the analytics computations. Every function works on an
// in-memory snapshot loaded by the caller and performs no I/O.
package engine

import (
	"sort"

	"session-analytics-service/internal/analytics/core/domain"
)

// FunnelSteps is the fixed, ordered funnel.
var FunnelSteps = []string{
	"home_page",
	"search_page",
	"payment_page",
	"payment_confirmation_page",
}

// reachedCounts counts, per step, the sessions whose visited pages contain
// the step. Visit order inside the session is not considered.
func reachedCounts(sessions []domain.Session, steps []string) []int {
	counts := make([]int, len(steps))
	for _, s := range sessions {
		for i, step := range steps {
			if s.Visited(step) {
				counts[i]++
			}
		}
	}
	return counts
}

// CalculateFunnel computes the step statistics for one set of sessions.
func CalculateFunnel(sessions []domain.Session, device string) domain.FunnelAnalysisResult {
	res := domain.FunnelAnalysisResult{
		DeviceType: device,
		TotalUsers: len(sessions),
		Steps:      []domain.FunnelStepResult{},
	}
	if len(sessions) == 0 {
		return res
	}

	reached := reachedCounts(sessions, FunnelSteps)

	for i, step := range FunnelSteps {
		var conversion, dropOff float64

		if i == 0 {
			if reached[0] > 0 {
				conversion = 100
			}
		} else if prev := reached[i-1]; prev > 0 {
			// drop-off is the complement of the rounded conversion so the pair sums to 100
			conversion = domain.Round2(domain.Percent(reached[i], prev))
			dropOff = domain.Round2(100 - conversion)
		}

		res.Steps = append(res.Steps, domain.FunnelStepResult{
			Step:           step,
			TotalUsers:     reached[i],
			ConversionRate: conversion,
			DropOffRate:    dropOff,
			AvgTimeSpent:   avgTimeOnStep(sessions, step),
		})
	}

	last := len(FunnelSteps) - 1
	res.OverallConversionRate = domain.Round2(domain.Percent(reached[last], reached[0]))

	return res
}

// GroupFunnelByDevice partitions sessions by device and runs the funnel on
// each partition. Results are ordered by device name.
func GroupFunnelByDevice(sessions []domain.Session) []domain.FunnelAnalysisResult {
	groups := make(map[string][]domain.Session)
	for _, s := range sessions {
		d := s.DeviceOrUnknown()
		groups[d] = append(groups[d], s)
	}

	devices := make([]string, 0, len(groups))
	for d := range groups {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	results := make([]domain.FunnelAnalysisResult, 0, len(devices))
	for _, d := range devices {
		results = append(results, CalculateFunnel(groups[d], d))
	}
	return results
}

// avgTimeOnStep approximates time on a step as session duration divided by
// the number of distinct pages, averaged over sessions reaching the step.
// Sessions without an end time are skipped, so the result is nil rather
// than zero when none qualify.
func avgTimeOnStep(sessions []domain.Session, step string) *float64 {
	var sum float64
	var n int

	for _, s := range sessions {
		if !s.Visited(step) {
			continue
		}
		d, ok := s.Duration()
		if !ok {
			continue
		}
		pages := s.DistinctPages()
		if pages == 0 {
			continue
		}
		sum += d.Seconds() / float64(pages)
		n++
	}

	if n == 0 {
		return nil
	}
	avg := domain.Round2(sum / float64(n))
	return &avg
}
