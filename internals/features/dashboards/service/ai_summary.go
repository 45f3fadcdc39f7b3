package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"ftth_backend/internals/configs"
)

const (
	SourceAI    = "ai"
	SourceLocal = "local"

	aiTimeout = 20 * time.Second
)

var ErrNoCompletion = errors.New("AI tidak mengembalikan jawaban")

// Summarizer: penghasil teks ringkasan dari snapshot dashboard.
type Summarizer interface {
	Summarize(ctx context.Context, snap Snapshot) (string, error)
}

// Snapshot: data yang dikirim ke prompt.
type Snapshot struct {
	Summary    Summary        `json:"summary"`
	ByRegional []RegionalStat `json:"by_regional"`
	ByStatus   []CountStat    `json:"by_status"`
	ByUIC      []CountStat    `json:"by_uic"`
	ByProgress []ProgressStat `json:"by_progress"`
}

type AISummary struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

/* ==========================
   OpenAI
========================== */

type OpenAISummarizer struct {
	Client openai.Client
	Model  string
}

// NewOpenAISummarizer: nil bila OPENAI_API_KEY kosong.
func NewOpenAISummarizer(cfg configs.Config) *OpenAISummarizer {
	if strings.TrimSpace(cfg.OpenAIKey) == "" {
		return nil
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAIKey)}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	model := cfg.OpenAIModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAISummarizer{Client: openai.NewClient(opts...), Model: model}
}

const systemPrompt = "Kamu analis rollout jaringan FTTH. Tulis ringkasan singkat (maksimal 5 kalimat, Bahasa Indonesia) " +
	"dari data dashboard berikut: sebutkan total project, occupancy, regional dengan revenue terbesar, dan status yang perlu perhatian. " +
	"Jangan mengarang angka di luar data."

func (s *OpenAISummarizer) Summarize(ctx context.Context, snap Snapshot) (string, error) {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	resp, err := s.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(string(data)),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(400),
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrNoCompletion
	}
	return text, nil
}

/* ==========================
   Lokal (fallback)
========================== */

// LocalSummary: ringkasan deterministik tanpa panggilan jaringan.
func LocalSummary(snap Snapshot) string {
	s := snap.Summary
	if s.TotalProjects == 0 {
		return "Belum ada project aktif untuk filter ini."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Terdapat %d project aktif dengan total %s port, %s port terisi dan %s port idle. ",
		s.TotalProjects, s.TotalPort, s.TotalPortTerisi, s.TotalIdlePort)
	fmt.Fprintf(&b, "Rata-rata occupancy %s%%. Total revenue %s dengan capex %s. ",
		s.AvgOccupancy, s.TotalRevenue, s.TotalCapex)

	if top, ok := topRevenue(snap.ByRegional); ok {
		fmt.Fprintf(&b, "Regional dengan revenue terbesar: %s (%s dari %d project). ", top.Regional, top.Revenue, top.Projects)
	}
	if top, ok := topCount(snap.ByStatus); ok {
		fmt.Fprintf(&b, "Status terbanyak: %s (%d project).", top.Key, top.Count)
	}
	return strings.TrimSpace(b.String())
}

func topRevenue(rows []RegionalStat) (RegionalStat, bool) {
	var best RegionalStat
	found := false
	for _, r := range rows {
		if !found || dec(r.Revenue).GreaterThan(dec(best.Revenue)) {
			best, found = r, true
		}
	}
	return best, found
}

func topCount(rows []CountStat) (CountStat, bool) {
	var best CountStat
	found := false
	for _, r := range rows {
		if r.Count > 0 && (!found || r.Count > best.Count) {
			best, found = r, true
		}
	}
	return best, found
}
