package mock

import "github.com/bryanwahyu/global-sentinel/internal/domain/intel"

var flowcharts = map[intel.Category][]string{
	intel.Cyber: {
		"Phase 1: Initial reconnaissance and vulnerability scanning (0-24 hours)",
		"Phase 2: Exploitation and lateral movement across network segments (24-72 hours)",
		"Phase 3: Persistence establishment and privilege escalation (3-7 days)",
		"Phase 4: Data exfiltration and operational technology targeting (1-2 weeks)",
		"Phase 5: Kinetic effects on critical infrastructure systems (2-4 weeks)",
		"Phase 6: Attribution investigation and international response coordination (1-3 months)",
	},
	intel.Climate: {
		"Phase 1: Environmental threshold breach and early warning activation (0-30 days)",
		"Phase 2: Ecosystem collapse triggers and agricultural impact assessment (1-6 months)",
		"Phase 3: Mass migration initiation and border pressure points (6-18 months)",
		"Phase 4: Resource conflict emergence and regional destabilization (1-3 years)",
		"Phase 5: International cooperation breakdown and adaptation failure (3-10 years)",
		"Phase 6: Civilizational restructuring and new equilibrium search (10+ years)",
	},
	intel.Health: {
		"Phase 1: Pathogen detection and initial containment measures (0-14 days)",
		"Phase 2: Community transmission confirmation and health system mobilization (2-6 weeks)",
		"Phase 3: Exponential growth phase and non-pharmaceutical interventions (6-12 weeks)",
		"Phase 4: Healthcare system strain and economic disruption onset (3-6 months)",
		"Phase 5: Vaccine development and distribution logistics preparation (6-18 months)",
		"Phase 6: Recovery phase planning and long-term resilience building (18+ months)",
	},
	intel.Geopolitical: {
		"Phase 1: Tension escalation and diplomatic communication breakdown (0-72 hours)",
		"Phase 2: Military positioning and alliance consultation activation (3-14 days)",
		"Phase 3: Limited conflict initiation and international response coordination (2-4 weeks)",
		"Phase 4: Escalation management and conflict limitation negotiations (1-3 months)",
		"Phase 5: Resolution framework development and ceasefire implementation (3-12 months)",
		"Phase 6: Post-conflict reconstruction and long-term stability mechanisms (1-5 years)",
	},
}

var mitigations = map[intel.Category][]string{
	intel.Cyber: {
		"Immediate: Activate national cyber defense operations center within 2 hours",
		"Short-term: Deploy incident response teams to critical infrastructure operators (24 hours)",
		"Medium-term: Implement network segmentation and air-gapping protocols (48-72 hours)",
		"Long-term: Establish cyber threat information sharing consortium (30 days)",
		"Strategic: Develop international cyber warfare rules of engagement (90 days)",
		"Recovery: Execute national cyber resilience enhancement program (12 months)",
	},
	intel.Climate: {
		"Immediate: Activate emergency climate adaptation funds and resources (24 hours)",
		"Short-term: Deploy disaster relief teams to affected regions (72 hours)",
		"Medium-term: Establish climate refugee processing and support centers (30 days)",
		"Long-term: Implement accelerated renewable energy transition programs (180 days)",
		"Strategic: Launch international climate security cooperation framework (12 months)",
		"Recovery: Execute ecosystem restoration and resilience building programs (5 years)",
	},
	intel.Health: {
		"Immediate: Activate national pandemic response protocols within 6 hours",
		"Short-term: Deploy emergency medical teams and establish treatment centers (48 hours)",
		"Medium-term: Implement contact tracing and quarantine systems (7 days)",
		"Long-term: Scale vaccine development and manufacturing capacity (60 days)",
		"Strategic: Establish global health security surveillance network (180 days)",
		"Recovery: Build pandemic-resilient healthcare infrastructure (24 months)",
	},
	intel.Geopolitical: {
		"Immediate: Activate crisis management team and secure communication channels (2 hours)",
		"Short-term: Deploy diplomatic envoys and activate alliance consultation mechanisms (24 hours)",
		"Medium-term: Position peacekeeping forces and establish humanitarian corridors (72 hours)",
		"Long-term: Implement economic sanctions and diplomatic isolation measures (30 days)",
		"Strategic: Develop conflict resolution framework and peace negotiation structure (90 days)",
		"Recovery: Execute post-conflict reconstruction and reconciliation programs (12 months)",
	},
}

var sources = map[intel.Category][]string{
	intel.Cyber: {
		"CISA Cybersecurity and Infrastructure Security Agency",
		"NIST Cybersecurity Framework Documentation",
		"NATO Cooperative Cyber Defence Centre of Excellence",
		"Microsoft Threat Intelligence Center",
		"FireEye Mandiant Threat Research",
		"Symantec Internet Security Threat Report",
	},
	intel.Climate: {
		"IPCC Intergovernmental Panel on Climate Change",
		"NASA Goddard Institute for Space Studies",
		"NOAA National Oceanic and Atmospheric Administration",
		"UNEP United Nations Environment Programme",
		"Nature Climate Change Journal",
		"World Bank Climate Change Action Plan",
	},
	intel.Health: {
		"WHO World Health Organization",
		"CDC Centers for Disease Control and Prevention",
		"The Lancet Medical Journal",
		"Johns Hopkins Center for Health Security",
		"GAVI Global Alliance for Vaccines and Immunisation",
		"CEPI Coalition for Epidemic Preparedness Innovations",
	},
	intel.Geopolitical: {
		"Council on Foreign Relations",
		"RAND Corporation Strategic Analysis",
		"Carnegie Endowment for International Peace",
		"NATO Strategic Communications Centre",
		"UN Office for the Coordination of Humanitarian Affairs",
		"International Crisis Group",
	},
}

var supportingEvidence = map[intel.Category][]string{
	intel.Cyber: {
		"Industrial control systems showing 340% increase in unauthorized access attempts",
		"Dark web intelligence indicates coordination among state-sponsored threat actors",
		"Critical infrastructure operators reporting simultaneous reconnaissance activities",
		"Cybersecurity firms detecting novel malware variants targeting SCADA systems",
	},
	intel.Climate: {
		"Satellite data confirms accelerating ice sheet loss beyond IPCC projections",
		"Agricultural monitoring systems report crop yield declines across 23 countries",
		"Ocean temperature anomalies reach highest levels in 125,000 years",
		"Extreme weather frequency increased 400% compared to 20-year historical average",
	},
	intel.Health: {
		"Laboratory networks confirm novel pathogen with enhanced transmissibility markers",
		"Hospital utilization data shows ICU capacity approaching 95% in affected regions",
		"Contact tracing algorithms indicate exponential growth in community transmission",
		"Pharmaceutical supply chain monitoring reveals critical shortages in 15+ countries",
	},
	intel.Geopolitical: {
		"Satellite imagery confirms military asset positioning consistent with offensive operations",
		"Diplomatic communications analysis reveals breakdown in negotiation frameworks",
		"Economic indicators show war economy preparation in key regional actors",
		"Social media analysis indicates coordinated information warfare campaigns",
	},
}

var counterEvidence = []string{
	"Alternative intelligence assessments suggest lower probability of scenario actualization",
	"Historical precedent analysis indicates successful containment in 67% of similar cases",
	"Economic incentive structures favor de-escalation among key stakeholders",
	"International mediation mechanisms remain active and show engagement from all parties",
	"Technical mitigation capabilities have improved significantly since last comparable incident",
}

// verification fixtures
var (
	verificationReasoning = "Comprehensive fact-checking analysis conducted across multiple intelligence sources and databases. " +
		"Cross-referenced with historical precedents and expert assessments. " +
		"Evidence quality assessment completed using established verification protocols."

	verificationSupporting = []string{
		"Open source intelligence confirms key elements of the claim",
		"Multiple independent sources corroborate central facts",
		"Historical precedent analysis supports plausibility assessment",
		"Expert verification networks provide additional context",
	}
	verificationChallenging = []string{
		"Some source credibility assessments require additional verification",
		"Timeline discrepancies noted in secondary source reporting",
		"Alternative explanations exist for observed phenomena",
		"Incomplete information available for comprehensive assessment",
	}
	verificationInsights = []string{
		"Intelligence confidence levels vary across source categories",
		"Real-time verification limited by information classification levels",
		"Cross-domain analysis reveals complex interaction patterns",
	}
	verificationSources = []string{
		"Verified Intelligence Networks",
		"Open Source Intelligence Fusion",
		"Academic Research Databases",
		"Government Assessment Reports",
		"International Monitoring Organizations",
	}
)

var deepRecommendations = []string{
	"Implement enhanced monitoring protocols",
	"Coordinate multi-agency response",
	"Prepare public communication strategy",
}
