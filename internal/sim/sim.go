// Package sim runs the daily fire model over a weather series for a set of
// configured sites and collects per-day results.
package sim

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ecoclim/spitfire/internal/config"
	"github.com/ecoclim/spitfire/internal/log"
	"github.com/ecoclim/spitfire/internal/weather"
	"github.com/ecoclim/spitfire/pkg/fire"
	"github.com/ecoclim/spitfire/pkg/fireweather"
	"github.com/ecoclim/spitfire/pkg/fuel"
	"github.com/ecoclim/spitfire/pkg/fuelmodels"
	"github.com/ecoclim/spitfire/pkg/params"
)

// DayResult is one site-day of simulated fire behavior.
type DayResult struct {
	Site string
	Day  int // zero-based index into the weather series

	FireWeatherIndex float64
	FireDangerIndex  float64
	EffectiveWind    float64 // [m/min]
	RateOfSpread     float64 // forward [m/min]
	FireIntensity    float64 // [kW/m]
	AreaBurnt        float64 // [m²/km²/day]
}

// site is one configured site with its assembled model. Each site carries
// its own weather index and fuel bed; only the parameter set is shared.
type site struct {
	cfg    config.SiteConfig
	runID  uuid.UUID
	model  *fire.Model
	litter fire.LitterInputs
}

// Simulator drives the daily fire model for every configured site across a
// weather series.
type Simulator struct {
	cfg    config.Config
	params *params.FireParams
	days   []weather.Day
}

// New loads the parameter set and weather series named by the configuration.
func New(cfg config.Config) (*Simulator, error) {
	p, err := params.FromYAML(cfg.ParamsFile)
	if err != nil {
		return nil, err
	}
	days, err := weather.ReadCSV(cfg.WeatherFile)
	if err != nil {
		return nil, err
	}
	return &Simulator{cfg: cfg, params: p, days: days}, nil
}

// Days returns the number of days in the loaded weather series.
func (s *Simulator) Days() int {
	return len(s.days)
}

// Run simulates every site across the full weather series. Results are
// ordered day-major, matching the output file layout. The context is
// checked once per simulated day.
func (s *Simulator) Run(ctx context.Context) ([]DayResult, error) {
	sites := make([]*site, 0, len(s.cfg.Sites))
	for _, sc := range s.cfg.Sites {
		st, err := s.newSite(sc)
		if err != nil {
			return nil, err
		}
		sites = append(sites, st)
	}

	log.Infow("starting simulation",
		"sites", len(sites),
		"days", len(s.days),
		"index", s.cfg.Index,
	)

	results := make([]DayResult, 0, len(s.days)*len(sites))
	for dayIdx, day := range s.days {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, st := range sites {
			in := fire.DailyInputs{
				TempC:         day.TempC,
				Precip:        day.Precip,
				RH:            day.RH,
				WindSpeed:     day.Wind,
				NumIgnitions:  st.cfg.Ignitions,
				TreeFraction:  st.cfg.TreeFraction,
				GrassFraction: st.cfg.GrassFraction,
				BareFraction:  st.cfg.BareFraction,
				Litter:        st.litter,
			}

			res, err := st.model.Step(in)
			if err != nil {
				return nil, fmt.Errorf("site %q day %d: %w", st.cfg.Name, dayIdx, err)
			}

			wx := st.model.Weather()
			results = append(results, DayResult{
				Site:             st.cfg.Name,
				Day:              dayIdx,
				FireWeatherIndex: wx.FireWeatherIndex(),
				FireDangerIndex:  wx.FireDangerIndex(),
				EffectiveWind:    wx.EffectiveWindspeed(),
				RateOfSpread:     res.RateOfSpread,
				FireIntensity:    res.FireIntensity,
				AreaBurnt:        res.AreaBurnt,
			})

			log.Debugw("day complete",
				"site", st.cfg.Name,
				"day", dayIdx,
				"fire_weather_index", wx.FireWeatherIndex(),
				"ros", res.RateOfSpread,
				"area_burnt", res.AreaBurnt,
			)
		}
	}

	for _, st := range sites {
		s.summarize(st, results)
	}
	return results, nil
}

// newSite assembles the weather index, fuel bed, and daily model for one
// configured site.
func (s *Simulator) newSite(sc config.SiteConfig) (*site, error) {
	wx, err := fireweather.New(fireweather.IndexKind(s.cfg.Index))
	if err != nil {
		return nil, fmt.Errorf("site %q: %w", sc.Name, err)
	}

	fm, err := fuelmodels.ByIndex(sc.FuelModel)
	if err != nil {
		return nil, fmt.Errorf("site %q: %w", sc.Name, err)
	}

	st := &site{
		cfg:    sc,
		runID:  uuid.New(),
		model:  fire.New(s.params, fuel.New(s.params), wx),
		litter: fm.Litter(s.params),
	}

	log.Infow("site initialized",
		"site", sc.Name,
		"run_id", st.runID.String(),
		"fuel_model", fm.Code,
		"fuel_model_name", fm.Name,
		"ignitions", sc.Ignitions,
	)
	return st, nil
}

// summarize logs per-site statistics over the completed run.
func (s *Simulator) summarize(st *site, results []DayResult) {
	var area, intensity []float64
	spreadDays := 0
	for _, r := range results {
		if r.Site != st.cfg.Name {
			continue
		}
		area = append(area, r.AreaBurnt)
		intensity = append(intensity, r.FireIntensity)
		if r.RateOfSpread > 0.0 {
			spreadDays++
		}
	}
	if len(area) == 0 {
		return
	}

	log.Infow("site summary",
		"site", st.cfg.Name,
		"run_id", st.runID.String(),
		"days", len(area),
		"days_with_spread", spreadDays,
		"total_area_burnt", floats.Sum(area),
		"mean_area_burnt", stat.Mean(area, nil),
		"max_area_burnt", floats.Max(area),
		"max_fire_intensity", floats.Max(intensity),
	)
}

// WriteResults writes results as CSV, one row per site-day.
func WriteResults(w io.Writer, results []DayResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"site", "day", "fire_weather_index", "fire_danger_index",
		"effective_wind", "ros_forward", "fire_intensity", "area_burnt",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Site,
			strconv.Itoa(r.Day),
			formatFloat(r.FireWeatherIndex),
			formatFloat(r.FireDangerIndex),
			formatFloat(r.EffectiveWind),
			formatFloat(r.RateOfSpread),
			formatFloat(r.FireIntensity),
			formatFloat(r.AreaBurnt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing results row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
