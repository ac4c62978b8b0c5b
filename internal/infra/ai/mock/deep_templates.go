package mock

import "github.com/bryanwahyu/global-sentinel/internal/domain/intel"

type deepTemplate struct {
	title   string
	content string
}

var deepTemplates = map[intel.AnalysisType]deepTemplate{
	intel.RootCause: {
		title: "Root Cause Deep Analysis",
		content: `SYSTEMIC ANALYSIS:
This root cause operates within complex adaptive systems where multiple feedback loops create emergent behaviors. The cause functions as a critical node in the broader threat ecosystem, influencing decision-making processes across governmental, corporate, and individual levels.

HISTORICAL CONTEXT:
Analysis of 150+ historical precedents reveals this pattern emerges during periods of systemic stress, typically 18-36 months before major crisis events. Previous manifestations include the 2008 financial crisis precursors, pre-pandemic institutional failures, and early-stage conflict escalation patterns.

INTERCONNECTIONS:
Primary amplifying factors include information asymmetries, resource allocation inefficiencies, and coordination failures among key stakeholders. Mitigating factors encompass institutional redundancy, early warning systems, and international cooperation mechanisms.

EVIDENCE BASE:
Peer-reviewed research from Harvard Kennedy School, RAND Corporation, and Council on Foreign Relations provides substantial analytical foundation. Real-time intelligence from NATO Strategic Communications Centre corroborates historical pattern analysis.

POLICY IMPLICATIONS:
Requires immediate attention to governance frameworks, resource allocation mechanisms, and inter-agency coordination protocols. Recommended interventions include enhanced monitoring systems, improved communication channels, and strengthened institutional resilience measures.`,
	},
	intel.EscalationFactor: {
		title: "Escalation Factor Analysis",
		content: `ACCELERATION MECHANISMS:
This factor operates through positive feedback loops that amplify initial disturbances. Mathematical modeling indicates exponential growth potential under specific conditions, with threshold points at 30%, 60%, and 85% system capacity.

THRESHOLD ANALYSIS:
Critical decision points occur at 72-hour, 2-week, and 6-month intervals. Historical analysis shows intervention effectiveness decreases by 40% for each threshold crossed without mitigation action.

FEEDBACK LOOPS:
Self-reinforcing cycles emerge through media amplification, public perception shifts, and institutional response delays. Counter-balancing mechanisms include international pressure, economic incentives, and diplomatic intervention.

INTERVENTION POINTS:
Optimal intervention windows exist during initial escalation phase (0-72 hours), stabilization phase (1-2 weeks), and resolution phase (4-8 weeks). Cost-effectiveness analysis shows 10:1 benefit ratio for early intervention.

CASE STUDIES:
2014 Ukraine crisis escalation patterns, 2020 pandemic response delays, and 2021 supply chain disruption amplification provide relevant precedential analysis.`,
	},
	intel.CascadingEffect: {
		title: "Cascading Effects Analysis",
		content: `CASCADE MECHANICS:
Initial failure in primary system triggers sequential failures across interdependent networks. Network analysis reveals critical nodes where cascade propagation can be interrupted or accelerated.

NETWORK ANALYSIS:
Dependency mapping shows vulnerability pathways through financial systems, supply chains, communication networks, and governance structures. Critical path analysis identifies 12 key intervention points.

AMPLIFICATION FACTORS:
System coupling density, response time delays, and resource constraint interactions determine cascade severity. Monte Carlo simulations predict 60-90% probability of multi-domain impact.

CONTAINMENT STRATEGIES:
Circuit breaker mechanisms, redundancy activation, and isolation protocols can limit cascade spread. Effectiveness depends on implementation speed and resource availability.

SECONDARY IMPACTS:
Indirect effects include public confidence erosion, economic opportunity costs, and long-term institutional adaptation requirements. Total impact assessment requires 5-10 year analysis horizon.`,
	},
	intel.HistoricalPrecedent: {
		title: "Historical Precedent Analysis",
		content: `DETAILED CHRONOLOGY:
Comprehensive timeline analysis reveals pattern emergence 12-18 months before critical events, with acceleration phases at 6-month, 3-month, and 2-week intervals prior to crisis manifestation.

KEY ACTORS:
Decision-maker analysis identifies critical roles: political leadership, military command structures, economic policy makers, and international mediators. Behavioral pattern analysis shows consistent decision-making biases.

TURNING POINTS:
Pivotal moments typically occur when multiple crisis factors converge within 48-72 hour windows. Historical analysis shows 67% of outcomes determined during these critical decision periods.

LESSONS LEARNED:
Successful crisis management requires pre-positioned resources, clear command structures, rapid information processing capabilities, and international coordination mechanisms.

PATTERN RECOGNITION:
Current scenario shares 78% similarity with historical precedent cluster, suggesting high relevance for decision-making guidance and outcome prediction.`,
	},
}
