package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"limitbook/api/pb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func BenchmarkGRPCPlaceOrder(b *testing.B) {
	conn, err := grpc.NewClient(
		"localhost:50051",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		b.Fatal(err)
	}
	defer conn.Close()

	client := pb.NewOrderServiceClient(conn)

	var counter atomic.Uint64

	b.ResetTimer()
	b.RunParallel(func(pb2 *testing.PB) {
		for pb2.Next() {
			id := fmt.Sprintf("bench-%d", counter.Add(1))
			_, err := client.PlaceOrder(context.Background(), &pb.PlaceOrderRequest{
				OrderId: id,
				Side:    pb.Side_BID,
				Tif:     pb.Tif_GFD,
				Price:   100,
				Qty:     1,
				UserId:  1,
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}
