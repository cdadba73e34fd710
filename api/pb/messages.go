// Package pb defines the wire messages and service contract for the
// order gateway. It is hand-written rather than protoc-generated --
// see the codec in codec.go for how these types reach the wire.
package pb

import "google.golang.org/protobuf/types/known/timestamppb"

type Side int32

const (
	Side_BID Side = 0
	Side_ASK Side = 1
)

type Tif int32

const (
	Tif_GFD Tif = 0
	Tif_IOC Tif = 1
)

type PlaceOrderRequest struct {
	OrderId string `json:"order_id"`
	Side    Side   `json:"side"`
	Tif     Tif    `json:"tif"`
	Price   int64  `json:"price"`
	Qty     int64  `json:"qty"`
	UserId  uint64 `json:"user_id"`
}

type PlaceOrderResponse struct {
	Accepted bool     `json:"accepted"`
	Trades   []*Trade `json:"trades"`
}

type CancelOrderRequest struct {
	OrderId string `json:"order_id"`
}

type CancelOrderResponse struct {
	Found bool `json:"found"`
}

type ModifyOrderRequest struct {
	OrderId string `json:"order_id"`
	Side    Side   `json:"side"`
	Price   int64  `json:"price"`
	Qty     int64  `json:"qty"`
}

type ModifyOrderResponse struct {
	Accepted bool     `json:"accepted"`
	Trades   []*Trade `json:"trades"`
}

type Trade struct {
	Seq            uint64 `json:"seq"`
	AggressorId    string `json:"aggressor_id"`
	AggressorSide  Side   `json:"aggressor_side"`
	AggressorPrice int64  `json:"aggressor_price"`
	RestingId      string `json:"resting_id"`
	PassivePrice   int64  `json:"passive_price"`
	Qty            int64  `json:"qty"`
}

type SnapshotRequest struct{}

type SnapshotResponse struct {
	Created *timestamppb.Timestamp `json:"created"`
	Orders  []*OrderEntry          `json:"orders"`
}

type OrderEntry struct {
	Id     string `json:"id"`
	Side   Side   `json:"side"`
	Tif    Tif    `json:"tif"`
	Price  int64  `json:"price"`
	Qty    int64  `json:"qty"`
	UserId uint64 `json:"user_id"`
}

type StreamTradesRequest struct{}
