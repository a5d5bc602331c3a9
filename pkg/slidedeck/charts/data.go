package charts

// Flow is one link of the energy flow diagram.
type Flow struct {
	Source string
	Target string
	Value  float64 // Terawatt-hours
}

// Investment is one country's nuclear investment.
type Investment struct {
	Country  string
	Billions float64 // Investment in billions of USD
	Projects int
}

// WorkforceYear is the projected nuclear workforce for one year.
type WorkforceYear struct {
	Year     int
	Current  int // Workforce on the current trajectory
	Required int // Workforce the build-out needs
}

// ReactorSpec describes one small modular reactor design.
type ReactorSpec struct {
	Reactor      string
	CapacityMWe  float64
	Timeline     string
	Applications string
}

// TrainingPhase is one phase of the training programme.
type TrainingPhase struct {
	Phase       string
	FirstMonth  int
	LastMonth   int
	Description string
}

// EnergyFlow is the national energy flow from primary sources to sectors.
var EnergyFlow = []Flow{
	{Source: "Coal", Target: "Electricity", Value: 720},
	{Source: "Oil & Gas", Target: "Transportation", Value: 280},
	{Source: "Nuclear", Target: "Electricity", Value: 50},
	{Source: "Renewables", Target: "Electricity", Value: 120},
	{Source: "Electricity", Target: "Industry", Value: 400},
	{Source: "Electricity", Target: "Residential", Value: 300},
	{Source: "Electricity", Target: "Commercial", Value: 190},
}

// InvestmentByCountry compares nuclear investment across countries.
var InvestmentByCountry = []Investment{
	{Country: "USA", Billions: 85, Projects: 12},
	{Country: "China", Billions: 120, Projects: 18},
	{Country: "India", Billions: 45, Projects: 8},
	{Country: "France", Billions: 35, Projects: 6},
	{Country: "UK", Billions: 28, Projects: 5},
}

// WorkforceProjections compares the workforce trajectory with demand.
var WorkforceProjections = []WorkforceYear{
	{Year: 2024, Current: 100000, Required: 100000},
	{Year: 2030, Current: 150000, Required: 200000},
	{Year: 2040, Current: 250000, Required: 300000},
	{Year: 2050, Current: 375000, Required: 375000},
}

// ReactorSpecs lists the small modular reactor designs.
var ReactorSpecs = []ReactorSpec{
	{Reactor: "BSMR-200", CapacityMWe: 200, Timeline: "2028-2030", Applications: "Industrial, Grid"},
	{Reactor: "BSMR-55", CapacityMWe: 55, Timeline: "2030-2032", Applications: "Remote, Island"},
}

// TrainingTimeline is the phased training programme.
var TrainingTimeline = []TrainingPhase{
	{Phase: "Lecture Series", FirstMonth: 1, LastMonth: 3, Description: "Nuclear physics and reactor theory"},
	{Phase: "Software Training", FirstMonth: 4, LastMonth: 6, Description: "OpenMC, OpenFOAM, simulation tools"},
	{Phase: "Team Formation", FirstMonth: 7, LastMonth: 9, Description: "Mission mode teams with KPI tracking"},
}
