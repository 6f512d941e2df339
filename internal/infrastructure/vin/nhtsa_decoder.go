package vin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/cache"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// Config configures the NHTSA vPIC client.
type Config struct {
	BaseURL  string // https://vpic.nhtsa.dot.gov/api/vehicles
	CacheTTL time.Duration
	Timeout  time.Duration
	// RatePerSecond caps outbound lookups; 0 disables the limit.
	RatePerSecond float64
}

// NHTSADecoder decodes VINs through the public vPIC API. Results are cached
// per VIN and concurrent lookups of the same VIN share one request.
type NHTSADecoder struct {
	cfg     Config
	http    *http.Client
	cache   cache.Cache[string, entities.VehicleInfo]
	group   singleflight.Group
	limiter *rate.Limiter
	log     *zap.Logger
	metrics *metrics.Metrics
}

var _ interfaces.IVehicleDecoder = (*NHTSADecoder)(nil)

func NewNHTSADecoder(cfg Config, httpClient *http.Client, log *zap.Logger, m *metrics.Metrics) *NHTSADecoder {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	d := &NHTSADecoder{
		cfg:     cfg,
		http:    httpClient,
		cache:   cache.NewTTLCache[string, entities.VehicleInfo](),
		log:     log.Named("vin"),
		metrics: m,
	}
	if cfg.RatePerSecond > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), int(cfg.RatePerSecond)+1)
	}
	return d
}

type decodeResponse struct {
	Results []struct {
		Variable string  `json:"Variable"`
		Value    *string `json:"Value"`
	} `json:"Results"`
}

func (d *NHTSADecoder) Decode(ctx context.Context, vin string) (entities.VehicleInfo, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if len(vin) != entities.VINLength {
		return entities.VehicleInfo{}, fmt.Errorf("%w: vin must be %d characters", interfaces.ErrInvalidReference, entities.VINLength)
	}

	if info, ok := d.cache.Get(vin); ok {
		d.metrics.IncVINLookup("cache")
		return info, nil
	}

	// The shared fetch outlives any single caller; each caller waits on its own ctx.
	ch := d.group.DoChan(vin, func() (any, error) {
		info, err := d.fetch(context.WithoutCancel(ctx), vin)
		if err != nil {
			return entities.VehicleInfo{}, err
		}
		d.cache.Set(vin, info, d.cfg.CacheTTL)
		return info, nil
	})
	select {
	case <-ctx.Done():
		return entities.VehicleInfo{}, fmt.Errorf("%w: %v", interfaces.ErrVehicleLookupFailed, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return entities.VehicleInfo{}, res.Err
		}
		if res.Shared {
			d.metrics.IncVINLookup("shared")
		}
		return res.Val.(entities.VehicleInfo), nil
	}
}

func (d *NHTSADecoder) fetch(ctx context.Context, vin string) (entities.VehicleInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return entities.VehicleInfo{}, fmt.Errorf("%w: %v", interfaces.ErrVehicleLookupFailed, err)
		}
	}

	endpoint := strings.TrimRight(d.cfg.BaseURL, "/") + "/DecodeVin/" + url.PathEscape(vin) + "?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.VehicleInfo{}, err
	}
	req.Header.Set("Accept", "application/json")

	d.metrics.IncVINLookup("remote")
	resp, err := d.http.Do(req)
	if err != nil {
		d.log.Warn("decode request failed", zap.String("vin", vin), zap.Error(err))
		return entities.VehicleInfo{}, fmt.Errorf("%w: %v", interfaces.ErrVehicleLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		d.log.Warn("decode returned non-200", zap.String("vin", vin), zap.Int("status", resp.StatusCode))
		return entities.VehicleInfo{}, fmt.Errorf("%w: status %d", interfaces.ErrVehicleLookupFailed, resp.StatusCode)
	}

	var body decodeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return entities.VehicleInfo{}, fmt.Errorf("%w: decode body: %v", interfaces.ErrVehicleLookupFailed, err)
	}

	values := make(map[string]string, len(body.Results))
	for _, r := range body.Results {
		if r.Value == nil {
			continue
		}
		if v := strings.TrimSpace(*r.Value); v != "" {
			values[r.Variable] = v
		}
	}

	info := entities.VehicleInfo{
		VIN:          vin,
		Make:         values["Make"],
		Model:        values["Model"],
		BodyType:     values["Body Class"],
		FuelType:     values["Fuel Type - Primary"],
		Manufacturer: values["Manufacturer Name"],
		PlantCountry: values["Plant Country"],
	}
	if y, err := strconv.Atoi(values["Model Year"]); err == nil {
		info.Year = y
	}
	d.log.Debug("vin decoded", zap.String("vin", vin), zap.String("summary", info.Summary()))
	return info, nil
}
