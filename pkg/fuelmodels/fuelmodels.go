// Package fuelmodels embeds the standard fire behavior fuel models of
// Anderson (1982) and Scott and Burgan (2005) as a static reference table.
// The published figures are in US units (tons/acre, feet); the table is
// converted once at load time, so every loading is already kgC/m² and every
// depth already meters by the time a caller sees it.
package fuelmodels

import (
	"fmt"

	"github.com/ecoclim/spitfire/pkg/fire"
	"github.com/ecoclim/spitfire/pkg/fuel"
	"github.com/ecoclim/spitfire/pkg/params"
)

const (
	usTonsToKg = 907.185
	acresToM2  = 4046.86

	// usTonsAcreToKgCM2 converts dry matter tons/acre to kgC/m².
	usTonsAcreToKgCM2 = usTonsToKg / acresToM2 * fuel.CarbonFraction

	ftToM = 0.3048
)

// FuelModel is one standard fuel model. Loadings are by fuel time-lag
// class: HR1 (1-hour fine fuels), HR10 (10-hour), HR100 (100-hour), plus
// live herbaceous and live woody pools.
type FuelModel struct {
	Index   int    // published model number
	Carrier string // fire-carrying fuel type group (GR, GS, SH, TU, TL, SB)
	Code    string // short code, carrier plus index
	Name    string

	WindAdjFactor float64 // midflame wind adjustment [0-1]
	HR1           float64 // [kgC/m²]
	HR10          float64 // [kgC/m²]
	HR100         float64 // [kgC/m²]
	LiveHerb      float64 // [kgC/m²]
	LiveWoody     float64 // [kgC/m²]
	Depth         float64 // fuel bed depth [m]
}

// The 13 original models plus the 40 of Scott and Burgan, as published:
// loadings in tons/acre, depth in feet. Converted to metric in init.
var fuelModels = []FuelModel{
	{Index: 1, Carrier: "GR", Name: "short grass", WindAdjFactor: 0.36, HR1: 0.7, Depth: 1.0},
	{Index: 2, Carrier: "GR", Name: "timber and grass understory", WindAdjFactor: 0.36, HR1: 2.0, HR10: 1.0, HR100: 0.5, LiveHerb: 0.5, Depth: 1.0},
	{Index: 3, Carrier: "GR", Name: "tall grass", WindAdjFactor: 0.44, HR1: 3.0, Depth: 2.5},
	{Index: 4, Carrier: "SH", Name: "chapparal", WindAdjFactor: 0.55, HR1: 5.0, HR10: 4.0, HR100: 2.0, LiveWoody: 5.0, Depth: 6.0},
	{Index: 5, Carrier: "SH", Name: "brush", WindAdjFactor: 0.42, HR1: 1.0, HR10: 0.5, LiveWoody: 2.0, Depth: 2.0},
	{Index: 6, Carrier: "SH", Name: "dormant brush", WindAdjFactor: 0.44, HR1: 1.5, HR10: 2.5, HR100: 2.0, Depth: 2.5},
	{Index: 7, Carrier: "SH", Name: "southern rough", WindAdjFactor: 0.44, HR1: 1.1, HR10: 1.9, HR100: 1.0, LiveWoody: 0.4, Depth: 2.5},
	{Index: 8, Carrier: "TL", Name: "compact timber litter", WindAdjFactor: 0.28, HR1: 1.5, HR10: 1.0, HR100: 2.5, Depth: 0.2},
	{Index: 9, Carrier: "TL", Name: "hardwood litter", WindAdjFactor: 0.28, HR1: 2.9, HR10: 0.4, HR100: 0.2, Depth: 0.2},
	{Index: 10, Carrier: "TU", Name: "timber and litter understorey", WindAdjFactor: 0.46, HR1: 3.0, HR10: 2.0, HR100: 5.0, LiveWoody: 2.0, Depth: 1.0},
	{Index: 11, Carrier: "SB", Name: "light slash", WindAdjFactor: 0.36, HR1: 1.5, HR10: 4.5, HR100: 5.5, Depth: 1.0},
	{Index: 12, Carrier: "SB", Name: "medium slash", WindAdjFactor: 0.43, HR1: 4.0, HR10: 14.0, HR100: 16.5, Depth: 2.3},
	{Index: 13, Carrier: "SB", Name: "heavy slash", WindAdjFactor: 0.46, HR1: 7.0, HR10: 23.0, HR100: 28.1, Depth: 3.0},
	{Index: 101, Carrier: "GR", Name: "short, sparse dry climate grass", WindAdjFactor: 0.31, HR1: 0.1, LiveHerb: 0.3, Depth: 0.4},
	{Index: 102, Carrier: "GR", Name: "low load dry climate grass", WindAdjFactor: 0.36, HR1: 0.1, LiveHerb: 1.0, Depth: 1.0},
	{Index: 103, Carrier: "GR", Name: "low load very coarse humid climate grass", WindAdjFactor: 0.42, HR1: 0.1, HR10: 0.4, LiveHerb: 1.5, Depth: 2.0},
	{Index: 104, Carrier: "GR", Name: "moderate load dry climate grass", WindAdjFactor: 0.42, HR1: 0.3, LiveHerb: 1.9, Depth: 2.0},
	{Index: 105, Carrier: "GR", Name: "low load humid climate grass", WindAdjFactor: 0.39, HR1: 0.4, LiveHerb: 2.5, Depth: 1.5},
	{Index: 106, Carrier: "GR", Name: "moderate load humid climate grass", WindAdjFactor: 0.39, HR1: 0.1, LiveHerb: 3.4, Depth: 1.5},
	{Index: 107, Carrier: "GR", Name: "high load dry climate grass", WindAdjFactor: 0.46, HR1: 1.0, LiveHerb: 5.4, Depth: 3.0},
	{Index: 108, Carrier: "GR", Name: "high load humid climate grass", WindAdjFactor: 0.49, HR1: 0.5, HR10: 1.0, LiveHerb: 7.3, Depth: 4.0},
	{Index: 109, Carrier: "GR", Name: "very high load humid climate grass-shrub", WindAdjFactor: 0.52, HR1: 1.0, HR10: 1.0, LiveHerb: 9.0, Depth: 5.0},
	{Index: 121, Carrier: "GS", Name: "low load dry climate grass-shrub", WindAdjFactor: 0.35, HR1: 0.2, LiveHerb: 0.5, LiveWoody: 0.7, Depth: 0.9},
	{Index: 122, Carrier: "GS", Name: "moderate load dry climate grass-shrub", WindAdjFactor: 0.39, HR1: 0.5, HR10: 0.5, LiveHerb: 0.6, LiveWoody: 1.0, Depth: 1.5},
	{Index: 123, Carrier: "GS", Name: "moderate load humid climate grass-shrub", WindAdjFactor: 0.41, HR1: 0.3, HR10: 0.3, LiveHerb: 1.5, LiveWoody: 1.3, Depth: 1.8},
	{Index: 124, Carrier: "GS", Name: "high load humid climate grass-shrub", WindAdjFactor: 0.42, HR1: 1.9, HR10: 0.3, HR100: 0.1, LiveHerb: 3.4, LiveWoody: 7.1, Depth: 2.1},
	{Index: 141, Carrier: "SH", Name: "low load dry climate shrub", WindAdjFactor: 0.36, HR1: 0.3, HR10: 0.3, LiveHerb: 0.2, LiveWoody: 1.3, Depth: 1.0},
	{Index: 142, Carrier: "SH", Name: "moderate load dry climate shrub", WindAdjFactor: 0.36, HR1: 1.4, HR10: 2.4, HR100: 0.8, LiveWoody: 3.9, Depth: 1.0},
	{Index: 143, Carrier: "SH", Name: "moderate load humid climate shrub", WindAdjFactor: 0.44, HR1: 0.5, HR10: 3.0, LiveWoody: 6.2, Depth: 2.4},
	{Index: 144, Carrier: "SH", Name: "low load humid climate timber-shrub", WindAdjFactor: 0.46, HR1: 0.9, HR10: 1.2, HR100: 0.2, LiveWoody: 2.6, Depth: 3.0},
	{Index: 145, Carrier: "SH", Name: "high load dry climate shrub", WindAdjFactor: 0.55, HR1: 3.6, HR10: 2.1, LiveWoody: 2.9, Depth: 6.0},
	{Index: 146, Carrier: "SH", Name: "low load humid climate shrub", WindAdjFactor: 0.42, HR1: 2.9, HR10: 1.5, LiveWoody: 1.4, Depth: 2.0},
	{Index: 147, Carrier: "SH", Name: "very high load dry climate shrub", WindAdjFactor: 0.55, HR1: 3.5, HR10: 5.3, HR100: 2.2, LiveWoody: 3.4, Depth: 6.0},
	{Index: 148, Carrier: "SH", Name: "high load humid climate shrub", WindAdjFactor: 0.46, HR1: 2.1, HR10: 3.4, HR100: 0.9, LiveWoody: 4.4, Depth: 3.0},
	{Index: 149, Carrier: "SH", Name: "very high load humid climate shrub", WindAdjFactor: 0.50, HR1: 4.5, HR10: 2.5, LiveHerb: 1.6, LiveWoody: 7.0, Depth: 4.4},
	{Index: 161, Carrier: "TU", Name: "light load dry climate timber-grass-shrub", WindAdjFactor: 0.33, HR1: 0.2, HR10: 0.9, HR100: 1.5, LiveHerb: 0.2, LiveWoody: 0.9, Depth: 0.6},
	{Index: 162, Carrier: "TU", Name: "moderate load humid climate timber-shrub", WindAdjFactor: 0.36, HR1: 1.0, HR10: 1.8, HR100: 1.3, LiveWoody: 0.2, Depth: 1.0},
	{Index: 163, Carrier: "TU", Name: "moderate load humid climate timber-grass-shrub", WindAdjFactor: 0.38, HR1: 1.1, HR10: 0.2, HR100: 0.2, LiveHerb: 0.3, LiveWoody: 0.7, Depth: 1.3},
	{Index: 164, Carrier: "TU", Name: "dwarf conifer with understory", WindAdjFactor: 0.32, HR1: 4.5, LiveWoody: 2.0, Depth: 0.5},
	{Index: 165, Carrier: "TU", Name: "very high load dry climate timber-shrub", WindAdjFactor: 0.33, HR1: 4.0, HR10: 4.0, HR100: 3.0, LiveWoody: 3.0, Depth: 1.0},
	{Index: 181, Carrier: "TL", Name: "low load compact conifer litter", WindAdjFactor: 0.28, HR1: 1.0, HR10: 2.2, HR100: 3.6, Depth: 0.2},
	{Index: 182, Carrier: "TL", Name: "low load broadleaf litter", WindAdjFactor: 0.28, HR1: 1.4, HR10: 2.3, HR100: 2.2, Depth: 0.2},
	{Index: 183, Carrier: "TL", Name: "moderate load conifer litter", WindAdjFactor: 0.29, HR1: 0.5, HR10: 2.2, HR100: 2.8, Depth: 0.3},
	{Index: 184, Carrier: "TL", Name: "small downed logs", WindAdjFactor: 0.31, HR1: 0.5, HR10: 1.5, HR100: 4.2, Depth: 0.4},
	{Index: 185, Carrier: "TL", Name: "high load conifer litter", WindAdjFactor: 0.33, HR1: 1.2, HR10: 2.5, HR100: 4.4, Depth: 0.6},
	{Index: 186, Carrier: "TL", Name: "moderate load broadleaf litter", WindAdjFactor: 0.29, HR1: 2.4, HR10: 1.2, HR100: 1.2, Depth: 0.3},
	{Index: 187, Carrier: "TL", Name: "large downed logs", WindAdjFactor: 0.31, HR1: 0.3, HR10: 1.4, HR100: 8.1, Depth: 0.4},
	{Index: 188, Carrier: "TL", Name: "long-needle litter", WindAdjFactor: 0.29, HR1: 5.0, HR10: 1.4, HR100: 1.1, Depth: 0.3},
	{Index: 189, Carrier: "TL", Name: "very high load broadleaf litter", WindAdjFactor: 0.33, HR1: 6.7, HR10: 3.3, HR100: 4.2, Depth: 0.6},
	{Index: 201, Carrier: "SB", Name: "low load activity fuel", WindAdjFactor: 0.36, HR1: 1.5, HR10: 3.0, HR100: 11.1, Depth: 1.0},
	{Index: 202, Carrier: "SB", Name: "moderate load activity fuel or low load blowdown", WindAdjFactor: 0.36, HR1: 4.5, HR10: 4.3, HR100: 4.0, Depth: 1.0},
	{Index: 203, Carrier: "SB", Name: "high load activity fuel or moderate load blowdown", WindAdjFactor: 0.38, HR1: 5.5, HR10: 2.8, HR100: 3.0, Depth: 1.2},
	{Index: 204, Carrier: "SB", Name: "high load blowdown", WindAdjFactor: 0.45, HR1: 5.3, HR10: 3.5, HR100: 5.3, Depth: 2.7},
}

func init() {
	for i := range fuelModels {
		m := &fuelModels[i]
		m.HR1 *= usTonsAcreToKgCM2
		m.HR10 *= usTonsAcreToKgCM2
		m.HR100 *= usTonsAcreToKgCM2
		m.LiveHerb *= usTonsAcreToKgCM2
		m.LiveWoody *= usTonsAcreToKgCM2
		m.Depth *= ftToM
		if m.Code == "" {
			m.Code = fmt.Sprintf("%s%d", m.Carrier, m.Index)
		}
	}
}

// ByIndex looks up a fuel model by its published model number.
func ByIndex(index int) (FuelModel, error) {
	for _, m := range fuelModels {
		if m.Index == index {
			return m, nil
		}
	}
	return FuelModel{}, fmt.Errorf("unknown fuel model index %d", index)
}

// All returns every fuel model in table order.
func All() []FuelModel {
	out := make([]FuelModel, len(fuelModels))
	copy(out, fuelModels)
	return out
}

// Litter maps the model's time-lag loadings onto the six-class fuel bed:
// 1-hour fuels burn like leaf litter, 10-hour like twigs, and 100-hour
// fuels split between small and large branches in proportion to the
// parameter set's coarse woody debris fractions. Live woody loading stays
// out of the surface fuel bed, and a fuel model never includes trunks.
func (m FuelModel) Litter(p *params.FireParams) fire.LitterInputs {
	branchTotal := p.CWDFrac[1] + p.CWDFrac[2]
	smallFrac := p.CWDFrac[1] / branchTotal
	largeFrac := p.CWDFrac[2] / branchTotal

	return fire.LitterInputs{
		LeafLitter:        m.HR1,
		TwigLitter:        m.HR10,
		SmallBranchLitter: m.HR100 * smallFrac,
		LargeBranchLitter: m.HR100 * largeFrac,
		TrunkLitter:       0.0,
		LiveGrass:         m.LiveHerb,
	}
}
