package grpcserver

import (
	"context"
	"log"

	pb "limitbook/api/pb"
	"limitbook/domain/orderbook"
	"limitbook/service"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *pb.PlaceOrderRequest,
) (*pb.PlaceOrderResponse, error) {
	side := toSide(req.Side)
	tif := toTif(req.Tif)

	trades, ok := s.svc.PlaceOrder(
		orderbook.OrderID(req.OrderId),
		side,
		tif,
		req.Price,
		req.Qty,
		req.UserId,
	)

	log.Printf(
		"[gRPC] PlaceOrder id=%s side=%v tif=%v price=%d qty=%d accepted=%v",
		req.OrderId, side, tif, req.Price, req.Qty, ok,
	)

	return &pb.PlaceOrderResponse{
		Accepted: ok,
		Trades:   fromTrades(trades),
	}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	found := s.svc.CancelOrder(orderbook.OrderID(req.OrderId))

	log.Printf("[gRPC] CancelOrder id=%s found=%v", req.OrderId, found)

	return &pb.CancelOrderResponse{
		Found: found,
	}, nil
}

func (s *Server) ModifyOrder(
	ctx context.Context,
	req *pb.ModifyOrderRequest,
) (*pb.ModifyOrderResponse, error) {
	trades, ok := s.svc.ModifyOrder(
		orderbook.OrderID(req.OrderId),
		toSide(req.Side),
		req.Price,
		req.Qty,
	)

	log.Printf(
		"[gRPC] ModifyOrder id=%s side=%v price=%d qty=%d accepted=%v",
		req.OrderId, req.Side, req.Price, req.Qty, ok,
	)

	return &pb.ModifyOrderResponse{
		Accepted: ok,
		Trades:   fromTrades(trades),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	orders := s.svc.Snapshot()

	resp := &pb.SnapshotResponse{
		Created: timestamppb.Now(),
		Orders:  make([]*pb.OrderEntry, 0, len(orders)),
	}

	for _, o := range orders {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			Id:     string(o.ID),
			Side:   fromSide(o.Side),
			Tif:    fromTif(o.Tif),
			Price:  o.Price,
			Qty:    o.Qty,
			UserId: o.UserID,
		})
	}

	return resp, nil
}

// StreamTrades pushes every trade executed from subscription time
// onward to the caller until the stream's context is cancelled.
func (s *Server) StreamTrades(
	req *pb.StreamTradesRequest,
	stream pb.OrderService_StreamTradesServer,
) error {
	ch := s.svc.Subscribe()
	defer s.svc.Unsubscribe(ch)

	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case tr, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(fromTrade(tr)); err != nil {
				return err
			}
		}
	}
}

// -------------------- Converters --------------------

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_ASK
	}
	return pb.Side_BID
}

func toTif(t pb.Tif) orderbook.Tif {
	if t == pb.Tif_IOC {
		return orderbook.IOC
	}
	return orderbook.GFD
}

func fromTif(t orderbook.Tif) pb.Tif {
	if t == orderbook.IOC {
		return pb.Tif_IOC
	}
	return pb.Tif_GFD
}

func fromTrade(t orderbook.Trade) *pb.Trade {
	return &pb.Trade{
		Seq:            t.Seq,
		AggressorId:    string(t.AggressorID),
		AggressorSide:  fromSide(t.AggressorSide),
		AggressorPrice: t.AggressorPrice,
		RestingId:      string(t.RestingID),
		PassivePrice:   t.PassivePrice,
		Qty:            t.Qty,
	}
}

func fromTrades(trades []orderbook.Trade) []*pb.Trade {
	out := make([]*pb.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, fromTrade(t))
	}
	return out
}
