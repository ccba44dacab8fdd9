package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tliron/commonlog"
	"google.golang.org/grpc"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dpzmick/sustain/api/grpcserver"
	pb "github.com/dpzmick/sustain/api/pb"
	"github.com/dpzmick/sustain/config"
	"github.com/dpzmick/sustain/domain/block"
	"github.com/dpzmick/sustain/history"
	"github.com/dpzmick/sustain/host"
	"github.com/dpzmick/sustain/infra/kafka"
	"github.com/dpzmick/sustain/infra/memory"
	"github.com/dpzmick/sustain/infra/outbox"
	"github.com/dpzmick/sustain/infra/sequence"
	"github.com/dpzmick/sustain/infra/spsc"
	"github.com/dpzmick/sustain/infra/wal"
	"github.com/dpzmick/sustain/jobs/broadcaster"
	"github.com/dpzmick/sustain/jobs/telemetry"
	"github.com/dpzmick/sustain/realtime"
	"github.com/dpzmick/sustain/reclaim"
	"github.com/dpzmick/sustain/service"
)

var log = commonlog.GetLogger("sustain.main")

func main() {
	configPath := flag.String("config", "sustain.toml", "path to config file")
	verbosity := flag.Int("v", 1, "log verbosity")
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Criticalf("config: %s", err.Error())
		os.Exit(1)
	}

	// ---------------- Publish journal ----------------

	journal, err := wal.Open(wal.Config{
		Dir:         cfg.Journal.Dir,
		SegmentSize: cfg.Journal.SegmentSize,
	})
	if err != nil {
		log.Criticalf("journal init failed: %s", err.Error())
		os.Exit(1)
	}

	// ---------------- Outbox ----------------

	var ob *outbox.Outbox
	if cfg.KafkaEnabled() {
		ob, err = outbox.Open(cfg.Outbox.Dir)
		if err != nil {
			log.Criticalf("outbox init failed: %s", err.Error())
			os.Exit(1)
		}
	}

	// ---------------- History ----------------

	hist, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Criticalf("history init failed: %s", err.Error())
		os.Exit(1)
	}
	defer hist.Close()

	// ---------------- Memory ----------------

	pool := memory.NewSamplePool(cfg.Engine.BlockFrames)

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Reclaimer ----------------

	policy := reclaim.PolicyRelease
	if cfg.Engine.ShutdownPolicy == "leak" {
		policy = reclaim.PolicyLeak
	}

	rec := reclaim.New(reclaim.Config{
		Interval: cfg.Engine.ReclaimInterval,
		Capacity: cfg.Engine.RegistryCapacity,
		Policy:   policy,
	})

	// ---------------- Realtime ----------------

	ch := spsc.NewChan[block.Handle](cfg.Engine.ChannelCapacity)
	player := realtime.NewPlayer(ch)

	h := host.New(host.Config{
		SampleRate:   cfg.Host.SampleRate,
		BufferFrames: cfg.Host.BufferFrames,
	}, player.Fill, func(at time.Time, elapsed, budget time.Duration, frames int) {
		if err := hist.RecordXrun(at, elapsed, budget, frames); err != nil {
			log.Errorf("record xrun: %s", err.Error())
		}
	})

	// ---------------- Engine ----------------

	engine := service.NewEngine(service.Deps{
		Pool:       pool,
		Seq:        seqGen,
		Journal:    journal,
		Outbox:     ob,
		Transport:  ch,
		Reclaimer:  rec,
		Player:     player,
		SampleRate: cfg.Host.SampleRate,
		Xruns:      h.Xruns,
	})

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec.Start()
	h.Start()

	// ---------------- JOURNAL REPLAY ----------------

	// After the host: a rendezvous transport needs the player polling
	// before the replayed block can be handed off.
	if err := engine.ReplayJournal(cfg.Journal.Dir); err != nil {
		log.Criticalf("journal replay failed: %s", err.Error())
		os.Exit(1)
	}

	// Sample reclaimer progress into history.
	go func() {
		t := time.NewTicker(30 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				err := hist.RecordReclaim(time.Now(),
					int(rec.Scans()), int(rec.Freed()), rec.Live())
				if err != nil {
					log.Errorf("record reclaim: %s", err.Error())
				}
			}
		}
	}()

	if cfg.KafkaEnabled() {
		bc, err := broadcaster.New(ob, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Criticalf("broadcaster init failed: %s", err.Error())
			os.Exit(1)
		}
		bc.Start(ctx)
		defer bc.Close()

		tp := telemetry.New(
			kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TelemetryTopic, cfg.Kafka.BatchTimeout),
			func() any { return engine.Stats() },
			cfg.Kafka.TelemetryInterval,
		)
		tp.Start(ctx)
		defer tp.Close()
	}

	if cfg.Engine.CaptureDir != "" {
		if err := os.MkdirAll(cfg.Engine.CaptureDir, 0o755); err != nil {
			log.Criticalf("capture dir: %s", err.Error())
			os.Exit(1)
		}
		capturePath := filepath.Join(cfg.Engine.CaptureDir, "latest.capture")
		engine.StartCaptureJob(ctx, capturePath, cfg.Engine.CaptureInterval)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.API.Listen)
	if err != nil {
		log.Criticalf("listen failed: %s", err.Error())
		os.Exit(1)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterSustainServer(grpcSrv, grpcserver.NewServer(engine))

	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			log.Criticalf("gRPC server exited: %s", err.Error())
		}
	}()

	fmt.Printf("sustaind running on %s (rate=%d frames=%d)\n",
		cfg.API.Listen, cfg.Host.SampleRate, cfg.Host.BufferFrames)

	// ---------------- Shutdown ----------------

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	grpcSrv.GracefulStop()
	cancel()

	// Stop the host before closing the engine so the final release of
	// any in-flight block never lands on the stream goroutine.
	h.Stop()
	if err := engine.Close(); err != nil {
		log.Errorf("engine close: %s", err.Error())
	}
}
