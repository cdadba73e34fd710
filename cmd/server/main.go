package main

import (
	"context"
	"flag"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"limitbook/api/grpcserver"
	pb "limitbook/api/pb"

	"limitbook/domain/orderbook"
	"limitbook/infra/memory"
	kafkainfra "limitbook/infra/kafka"
	"limitbook/infra/sequence"
	entrywal "limitbook/infra/wal/entry"
	exitwal "limitbook/infra/wal/exit"
	"limitbook/jobs/broadcaster"
	"limitbook/service"
	"limitbook/snapshot"
)

// Config holds every knob the server process takes from the command
// line. No env vars, no config files -- matches how the rest of the
// pack wires its binaries.
type Config struct {
	ListenAddr string

	EntryWALDir string
	ExitWALDir  string

	SnapshotDir      string
	SnapshotInterval time.Duration

	EpochInterval time.Duration

	KafkaBrokers string
	KafkaTopic   string

	BroadcastBrokers string
	BroadcastTopic   string
}

func parseConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.ListenAddr, "listen", ":50051", "gRPC listen address")
	flag.StringVar(&cfg.EntryWALDir, "entry-wal-dir", "./wal_entry", "entry WAL directory")
	flag.StringVar(&cfg.ExitWALDir, "exit-wal-dir", "./wal_exit", "exit WAL (outbox) directory")
	flag.StringVar(&cfg.SnapshotDir, "snapshot-dir", "./snapshots", "snapshot directory")
	flag.DurationVar(&cfg.SnapshotInterval, "snapshot-interval", 30*time.Second, "snapshot interval")
	flag.DurationVar(&cfg.EpochInterval, "epoch-interval", 2*time.Second, "reclamation epoch advance interval")
	flag.StringVar(&cfg.KafkaBrokers, "kafka-brokers", "", "comma-separated Kafka brokers for best-effort tick publishing (empty disables)")
	flag.StringVar(&cfg.KafkaTopic, "kafka-topic", "limitbook.ticks", "Kafka topic for best-effort tick publishing")
	flag.StringVar(&cfg.BroadcastBrokers, "broadcast-brokers", "", "comma-separated Kafka brokers for the durable trade outbox (empty disables)")
	flag.StringVar(&cfg.BroadcastTopic, "broadcast-topic", "limitbook.trades", "Kafka topic for the durable trade outbox")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseConfig()

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.EntryWALDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}

	exitWAL, err := exitwal.Open(cfg.ExitWALDir)
	if err != nil {
		log.Fatalf("exit WAL init failed: %v", err)
	}
	defer exitWAL.Close()

	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	ring := memory.NewRetireRing(1 << 18)
	reader := snapshot.NewReader()

	book := orderbook.NewOrderBook()

	startSeq, err := snapshot.Load(cfg.SnapshotDir+"/snapshot.bin", book, pool)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}
	seqGen := sequence.New(startSeq)

	if err := service.ReplayFromWAL(cfg.EntryWALDir, book, pool, seqGen); err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}

	svc := service.NewOrderService(
		book,
		pool,
		ring,
		reader,
		seqGen,
		entryWAL,
		exitWAL,
	)

	if cfg.KafkaBrokers != "" {
		producer := kafkainfra.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		svc.AttachKafka(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.EpochInterval)
		defer ticker.Stop()
		for range ticker.C {
			svc.AdvanceEpoch()
		}
	}()

	svc.StartSnapshotJob(cfg.SnapshotDir, cfg.SnapshotInterval)

	if cfg.BroadcastBrokers != "" {
		bc, err := broadcaster.New(exitWAL, strings.Split(cfg.BroadcastBrokers, ","), cfg.BroadcastTopic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		go bc.Run(ctx)
		defer bc.Close()
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	log.Printf("order engine listening on %s", cfg.ListenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
