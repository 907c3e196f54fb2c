package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kursovod/curator-bot/internal/bot"
	"github.com/kursovod/curator-bot/internal/classify"
	"github.com/kursovod/curator-bot/internal/config"
	"github.com/kursovod/curator-bot/internal/feedback"
	"github.com/kursovod/curator-bot/internal/generate"
	"github.com/kursovod/curator-bot/internal/judge"
	"github.com/kursovod/curator-bot/internal/knowledge"
	"github.com/kursovod/curator-bot/internal/llm"
	"github.com/kursovod/curator-bot/internal/mirror"
	"github.com/kursovod/curator-bot/internal/pipeline"
	"github.com/kursovod/curator-bot/internal/retrieval"
)

// #region main
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	llmClient := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.CallTimeout,
	})

	index, err := knowledge.NewClient(cfg.KnowledgeAddr)
	if err != nil {
		log.Fatalf("knowledge index at %s: %v", cfg.KnowledgeAddr, err)
	}
	defer index.Close()

	ledger, err := feedback.NewLedger(cfg.LogsPath)
	if err != nil {
		log.Fatalf("ledger: %v", err)
	}

	// Mirrors are best effort from the first moment: a broken store just
	// means fewer copies of the logs.
	var sinks []mirror.Sink
	if store, err := mirror.NewStore(cfg.MirrorDBPath); err != nil {
		log.Printf("[MIRROR] sqlite disabled: %v", err)
	} else {
		sinks = append(sinks, store)
	}
	if wb, err := mirror.OpenWorkbook(cfg.MirrorExcelPath); err != nil {
		log.Printf("[MIRROR] excel disabled: %v", err)
	} else {
		sinks = append(sinks, wb)
	}
	mirrors := mirror.NewDispatcher(sinks...)
	defer mirrors.Close()

	gate := classify.NewGate(cfg.Lexicon)

	orch := pipeline.NewOrchestrator(
		classify.NewClassifier(llmClient, gate, cfg.CourseName),
		classify.NewTemplates(cfg.CourseName, cfg.Templates),
		retrieval.NewRetriever(index, retrieval.Config{TopK: cfg.TopK, CandidateK: cfg.CandidateK}),
		generate.NewGenerator(llmClient, cfg.CourseName),
		judge.NewJudge(llmClient, cfg.CourseName),
		ledger,
		mirrors,
		pipeline.NewSessionStore(cfg.SessionTTL),
	)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	fmt.Printf("Curator bot @%s ready.\n", api.Self.UserName)
	fmt.Printf("  Course: %s | Index: %s | Logs: %s\n", cfg.CourseName, cfg.KnowledgeAddr, cfg.LogsPath)
	if cfg.CuratorChatID == 0 {
		log.Println("[BOT] CURATOR_CHAT_ID not set, escalations will only be logged")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	b := bot.New(api, orch, cfg.CourseName, cfg.CuratorChatID)
	b.Run(ctx, updates)

	log.Println("shutting down")
}

// #endregion main
