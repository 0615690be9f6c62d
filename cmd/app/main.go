package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bond_go/internal/app"
	"bond_go/internal/domain"
	"bond_go/internal/infra"
	"bond_go/internal/infra/feed"
	"bond_go/internal/infra/storage"
	"bond_go/internal/service"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := bootstrap.Config
	ref := bootstrap.RefData
	store := bootstrap.Storage

	// 3. Services
	pricing := service.NewPricingService()
	algoStreaming := service.NewAlgoStreamingService()
	streaming := service.NewStreamingService()
	gui := service.NewGUIService(time.Duration(cfg.GUI.ThrottleMS)*time.Millisecond, cfg.GUI.MaxUpdates)

	marketData := service.NewMarketDataService()
	algoExecution := service.NewAlgoExecutionService()
	execution := service.NewExecutionService()
	tradeBooking := service.NewTradeBookingService()
	position := service.NewPositionService(ref)
	risk := service.NewRiskService(ref)
	inquiry := service.NewInquiryService()

	histPositions := service.NewHistoricalService(func(p *domain.Position) string { return p.Product.ProductID() })
	histRisk := service.NewHistoricalService(func(p *domain.PV01) string { return p.Product.ProductID() })
	histExecutions := service.NewHistoricalService(func(o *domain.ExecutionOrder) string { return o.OrderID })
	histStreams := service.NewHistoricalService(func(ps *domain.PriceStream) string { return ps.Product.ProductID() })
	histInquiries := service.NewHistoricalService(func(i *domain.Inquiry) string { return i.InquiryID })

	histPositions.SetRecorder(storage.NewPositionRecorder(store))
	histRisk.SetRecorder(storage.NewRiskRecorder(store, risk, ref))
	histExecutions.SetRecorder(storage.NewExecutionRecorder(store))
	histStreams.SetRecorder(storage.NewStreamRecorder(store))
	histInquiries.SetRecorder(storage.NewInquiryRecorder(store))

	// 4. GUI output
	guiOut, err := os.OpenFile(cfg.Data.GUIOut, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("❌ Failed to open GUI output", slog.Any("error", err))
		os.Exit(1)
	}
	defer guiOut.Close()
	gui.SetConnector(feed.NewGUIWriter(guiOut))

	// 5. Listener wiring. Registration order is callback order.
	pricing.AddListener(service.NewGUIListener(gui))
	pricing.AddListener(service.NewAlgoStreamingListener(algoStreaming))
	algoStreaming.AddListener(service.NewStreamingListener(streaming))
	streaming.AddListener(service.NewHistoricalListener(histStreams))

	marketData.AddListener(service.NewAlgoExecutionListener(algoExecution))
	algoExecution.AddListener(service.NewExecutionListener(execution))
	execution.AddListener(service.NewTradeBookingListener(tradeBooking))
	execution.AddListener(service.NewHistoricalListener(histExecutions))

	tradeBooking.AddListener(service.NewPositionListener(position))
	position.AddListener(service.NewRiskListener(risk))
	position.AddListener(service.NewHistoricalListener(histPositions))
	risk.AddListener(service.NewHistoricalListener(histRisk))

	inquiry.AddListener(service.NewHistoricalListener(histInquiries))
	inquiry.AddListener(service.NewInquiryListener(inquiry))

	inquiryConn := feed.NewInquiryConnector(inquiry, ref)
	inquiry.SetConnector(inquiryConn)

	// 6. Replay the data files through the pipeline
	subscriptions := []struct {
		name string
		path string
		run  func(ctx context.Context, r *os.File) error
	}{
		{"prices", cfg.Data.Prices, func(ctx context.Context, r *os.File) error {
			return feed.NewPricingConnector(pricing, ref).Subscribe(ctx, r)
		}},
		{"trades", cfg.Data.Trades, func(ctx context.Context, r *os.File) error {
			return feed.NewTradeBookingConnector(tradeBooking, ref).Subscribe(ctx, r)
		}},
		{"marketdata", cfg.Data.MarketData, func(ctx context.Context, r *os.File) error {
			return feed.NewMarketDataConnector(marketData, ref).Subscribe(ctx, r)
		}},
		{"inquiries", cfg.Data.Inquiries, func(ctx context.Context, r *os.File) error {
			return inquiryConn.Subscribe(ctx, r)
		}},
	}

	for _, sub := range subscriptions {
		f, err := os.Open(sub.path)
		if err != nil {
			slog.Error("❌ Failed to open data file",
				slog.String("feed", sub.name), slog.Any("error", err))
			os.Exit(1)
		}
		slog.InfoContext(ctx, "▶️ Replaying feed", slog.String("feed", sub.name))
		if err := sub.run(ctx, f); err != nil {
			f.Close()
			slog.Error("❌ Feed replay failed",
				slog.String("feed", sub.name), slog.Any("error", err))
			os.Exit(1)
		}
		f.Close()
	}

	// 7. Post-replay book and risk summary
	for _, bond := range ref.Instruments() {
		if _, err := marketData.AggregateDepth(bond.CUSIP); err != nil {
			slog.Warn("depth aggregation skipped",
				slog.String("cusip", bond.CUSIP), slog.Any("error", err))
			continue
		}
		best, err := marketData.BestBidOffer(bond.CUSIP)
		if err != nil {
			slog.Warn("no best bid/offer",
				slog.String("cusip", bond.CUSIP), slog.Any("error", err))
			continue
		}
		slog.InfoContext(ctx, "book summary",
			slog.String("cusip", bond.CUSIP),
			slog.String("bid", domain.FormatFractional(best.BidOrder.Price)),
			slog.String("offer", domain.FormatFractional(best.OfferOrder.Price)))
	}

	for _, sector := range ref.Sectors() {
		if err := risk.UpdateBucketedRisk(sector.Name); err != nil {
			slog.Warn("bucketed risk skipped",
				slog.String("sector", sector.Name), slog.Any("error", err))
			continue
		}
		if bucket, ok := risk.BucketedRisk(sector.Name); ok {
			slog.InfoContext(ctx, "sector risk",
				slog.String("sector", sector.Name),
				slog.String("pv01", bucket.PerUnit.String()),
				slog.Int64("quantity", bucket.Quantity))
		}
	}

	snap := infra.GlobalMetrics.Snapshot()
	slog.InfoContext(ctx, "✨ Replay complete",
		slog.Uint64("ingested", snap.RecordsIngested),
		slog.Uint64("skipped", snap.RecordsSkipped),
		slog.Uint64("trades", snap.TradesBooked),
		slog.Uint64("executions", snap.OrdersExecuted),
		slog.Uint64("persist_failures", snap.PersistFailures))
}
