package server

import (
	"context"
	"net/http"

	"shipcatalog/internal/service"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// Operations of the ship catalog, as seen by middleware.
const (
	OperationShipServiceListShips  = "/shipcatalog.v1.ShipService/ListShips"
	OperationShipServiceCountShips = "/shipcatalog.v1.ShipService/CountShips"
	OperationShipServiceGetShip    = "/shipcatalog.v1.ShipService/GetShip"
	OperationShipServiceCreateShip = "/shipcatalog.v1.ShipService/CreateShip"
	OperationShipServiceUpdateShip = "/shipcatalog.v1.ShipService/UpdateShip"
	OperationShipServiceDeleteShip = "/shipcatalog.v1.ShipService/DeleteShip"
)

// RegisterShipHTTPServer mounts the ship routes under /rest/ships.
// The count route is registered before /{id} so it is not captured as an id.
func RegisterShipHTTPServer(s *khttp.Server, svc *service.ShipService) {
	r := s.Route("/")
	r.GET("/rest/ships", listShipsHandler(svc))
	r.GET("/rest/ships/count", countShipsHandler(svc))
	r.GET("/rest/ships/{id}", getShipHandler(svc))
	r.POST("/rest/ships", createShipHandler(svc))
	r.POST("/rest/ships/{id}", updateShipHandler(svc))
	r.DELETE("/rest/ships/{id}", deleteShipHandler(svc))
}

func listShipsHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in service.ListShipsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceListShips)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.ListShips(ctx, req.(*service.ListShipsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func countShipsHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in service.ShipCriteria
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceCountShips)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.CountShips(ctx, req.(*service.ShipCriteria))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func getShipHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in service.ShipIDRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceGetShip)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.GetShip(ctx, req.(*service.ShipIDRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func createShipHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in service.ShipPayload
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceCreateShip)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.CreateShip(ctx, req.(*service.ShipPayload))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func updateShipHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var id service.ShipIDRequest
		if err := ctx.BindVars(&id); err != nil {
			return err
		}
		in := service.UpdateShipRequest{ID: id.ID}
		if err := ctx.Bind(&in.Ship); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceUpdateShip)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.UpdateShip(ctx, req.(*service.UpdateShipRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func deleteShipHandler(svc *service.ShipService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in service.ShipIDRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationShipServiceDeleteShip)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, svc.DeleteShip(ctx, req.(*service.ShipIDRequest))
		})
		if _, err := h(ctx, &in); err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, nil)
	}
}
