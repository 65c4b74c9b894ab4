package chart

// Default 首次分析前展示的示例数据
func Default() *Dataset {
	return &Dataset{
		Timeline: []Milestone{
			{Date: "2025-03-01", Event: "FDA PCCP Guidance", Type: "US"},
			{Date: "2025-09-01", Event: "EU AI Standards", Type: "EU"},
			{Date: "2026-01-01", Event: "EU AI Act Full Effect", Type: "EU"},
			{Date: "2026-12-01", Event: "NMPA UDI Deadline", Type: "CN"},
		},
		ComplianceHeatmap: []RegionCompliance{
			{Region: "North America", Score: 85, Complexity: 70},
			{Region: "Europe", Score: 60, Complexity: 95},
			{Region: "Asia Pacific", Score: 75, Complexity: 80},
			{Region: "LATAM", Score: 40, Complexity: 60},
		},
		RiskMatrix: []Risk{
			{ID: "1", Name: "GenAI Triage", Probability: 80, Severity: 90, Category: "High"},
			{ID: "2", Name: "Img Analysis", Probability: 30, Severity: 85, Category: "High"},
			{ID: "3", Name: "Admin Chatbot", Probability: 60, Severity: 20, Category: "Low"},
			{ID: "4", Name: "Vitals Monitor", Probability: 10, Severity: 95, Category: "High"},
		},
		TechNetwork: []Link{
			{Source: "AI Act", Target: "MDR", Value: 10},
			{Source: "PCCP", Target: "FDA", Value: 10},
			{Source: "GenAI", Target: "Risk Mgmt", Value: 8},
			{Source: "Risk Mgmt", Target: "PMS", Value: 6},
		},
		Checklist: []Phase{
			{Phase: "Gap Analysis", Progress: 100, Status: "Done"},
			{Phase: "Tech File Update", Progress: 65, Status: "In Progress"},
			{Phase: "Clin. Eval", Progress: 30, Status: "Risk"},
			{Phase: "NB Audit", Progress: 0, Status: "Pending"},
		},
		Burden: []Burden{
			{Metric: "Cost", US: 60, EU: 95, CN: 70},
			{Metric: "Time", US: 50, EU: 90, CN: 80},
			{Metric: "Complexity", US: 55, EU: 100, CN: 75},
			{Metric: "Uncertainty", US: 40, EU: 60, CN: 50},
		},
	}
}
