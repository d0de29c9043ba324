package main

import (
	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

// deckBuilder accumulates slides and remembers the first construction error,
// so the content below reads as a flat declarative sequence.
type deckBuilder struct {
	d   *deck.Deck
	err error
}

func (b *deckBuilder) title(title, subtitle string) {
	if b.err != nil {
		return
	}
	b.d.AddTitleSlide(title, subtitle)
}

func (b *deckBuilder) bullets(title string, items ...string) {
	if b.err != nil {
		return
	}
	b.d.AddBulletedSlide(title, items)
}

func (b *deckBuilder) columns(title string, left, right []string) {
	if b.err != nil {
		return
	}
	b.d.AddTwoColumnSlide(title, left, right)
}

func (b *deckBuilder) table(title string, headers []string, rows [][]string) {
	if b.err != nil {
		return
	}
	b.err = b.d.AddTableSlide(title, headers, rows)
}

func (b *deckBuilder) chart(title string, categories []string, series []deck.Series, kind deck.ChartKind) {
	if b.err != nil {
		return
	}
	b.err = b.d.AddChartSlide(title, categories, series, kind)
}

// buildWorkshopDeck assembles the complete 2-day workshop deck for technology
// middle managers: Day 1 covers SMART objectives, Day 2 covers KPIs and
// cascading them to the team.
func buildWorkshopDeck() (*deck.Deck, error) {
	b := &deckBuilder{d: deck.New()}

	b.title(
		"How to Write Effective KPIs and SMART Objectives",
		"A 2-Day Workshop for Technology Middle Managers",
	)

	b.bullets("Workshop Overview",
		"Day 1: Understanding SMART Objectives & Goal Setting",
		"• What are objectives and why they matter",
		"• Introduction to the SMART framework",
		"• Writing effective function/team objectives",
		"• Practical exercises and examples",
		"",
		"Day 2: KPIs & Cascading to Your Team",
		"• Understanding KPIs and their importance",
		"• Creating meaningful KPIs from objectives",
		"• Cascading objectives and KPIs to team members",
		"• Real-world technology sector examples",
	)

	b.bullets("Learning Outcomes",
		"By the end of this workshop, you will be able to:",
		"",
		"✓ Understand the difference between objectives and KPIs",
		"✓ Write SMART objectives for your function/team",
		"✓ Create measurable KPIs that drive performance",
		"✓ Cascade organizational objectives to your team",
		"✓ Align individual KPIs with team and company goals",
		"✓ Monitor and track performance effectively",
	)

	// ----- Day 1: SMART objectives -----

	b.title("DAY 1", "Understanding SMART Objectives & Goal Setting")

	b.bullets("What Are Objectives?",
		"Definition:",
		"Objectives are specific, measurable goals that define what you want to achieve",
		"",
		"Why Objectives Matter:",
		"• Provide clear direction and focus",
		"• Align team efforts with organizational strategy",
		"• Enable performance measurement",
		"• Motivate and engage team members",
		"• Facilitate resource allocation and prioritization",
	)

	b.table("Objectives vs KPIs: Understanding the Difference",
		[]string{"Aspect", "Objectives", "KPIs"},
		[][]string{
			{"Definition", "What you want to achieve", "How you measure achievement"},
			{"Nature", "Qualitative or Quantitative", "Always Quantitative"},
			{"Purpose", "Set direction and goals", "Track progress and performance"},
			{"Example", "Improve customer satisfaction", "NPS score of 8.5 or higher"},
			{"Time Frame", "Medium to long-term", "Measured regularly (daily/weekly/monthly)"},
			{"Focus", "Outcome-oriented", "Metric-oriented"},
		},
	)

	b.title("The SMART Framework", "A Proven Method for Effective Objectives")

	b.columns("S - Specific",
		[]string{
			"What does SPECIFIC mean?",
			"• Clearly defined and unambiguous",
			"• Answers: Who, What, Where, When, Why",
			"• Leaves no room for misinterpretation",
			"• Focuses on a single objective",
			"",
			"Why it matters:",
			"• Provides clarity and direction",
			"• Reduces confusion",
			"• Easier to communicate to team",
		},
		[]string{
			"❌ Poor Example:",
			"'Improve our software quality'",
			"",
			"✅ SMART Example:",
			"'Reduce critical bugs in production by implementing automated testing for all new features in our mobile application'",
			"",
			"Notice the difference:",
			"• What: Reduce critical bugs",
			"• How: Automated testing",
			"• Where: Mobile application",
		},
	)

	b.columns("M - Measurable",
		[]string{
			"What does MEASURABLE mean?",
			"• Can be quantified or qualified",
			"• Has clear criteria for success",
			"• Progress can be tracked",
			"• Includes specific numbers/percentages",
			"",
			"Why it matters:",
			"• Enables progress tracking",
			"• Provides objective evaluation",
			"• Motivates through visible progress",
		},
		[]string{
			"❌ Poor Example:",
			"'Make our development process faster'",
			"",
			"✅ SMART Example:",
			"'Reduce average sprint cycle time from 3 weeks to 2 weeks by Q2 2024'",
			"",
			"Measurement criteria:",
			"• Baseline: 3 weeks",
			"• Target: 2 weeks",
			"• Metric: Sprint cycle time",
			"• Improvement: 33% reduction",
		},
	)

	b.columns("A - Achievable",
		[]string{
			"What does ACHIEVABLE mean?",
			"• Realistic given resources",
			"• Challenging but attainable",
			"• Within your control/influence",
			"• Considers constraints and risks",
			"",
			"Why it matters:",
			"• Maintains team motivation",
			"• Prevents burnout",
			"• Builds credibility",
			"• Ensures sustainable progress",
		},
		[]string{
			"❌ Poor Example:",
			"'Achieve 100% code coverage across all 50 legacy applications in 1 month'",
			"",
			"✅ SMART Example:",
			"'Achieve 80% code coverage on 5 priority applications within 6 months by allocating 20% of sprint capacity'",
			"",
			"Why it's achievable:",
			"• Realistic scope (5 apps, not 50)",
			"• Reasonable timeline (6 months)",
			"• Resource allocation defined (20%)",
			"• Practical target (80% vs 100%)",
		},
	)

	b.columns("R - Relevant",
		[]string{
			"What does RELEVANT mean?",
			"• Aligns with broader goals",
			"• Supports organizational strategy",
			"• Matters to stakeholders",
			"• Worth the time and effort",
			"",
			"Why it matters:",
			"• Ensures strategic alignment",
			"• Maximizes impact",
			"• Justifies resource investment",
			"• Maintains focus on priorities",
		},
		[]string{
			"Context: Company goal is to improve customer retention by 25%",
			"",
			"❌ Poor Example (Not Relevant):",
			"'Migrate all internal tools to newest framework version'",
			"",
			"✅ SMART Example (Relevant):",
			"'Reduce customer-reported app crashes by 60% to improve retention and user satisfaction'",
			"",
			"Why it's relevant:",
			"• Directly impacts customer experience",
			"• Supports retention goal",
			"• Addresses customer pain point",
		},
	)

	b.columns("T - Time-Bound",
		[]string{
			"What does TIME-BOUND mean?",
			"• Has a clear deadline",
			"• Includes milestones",
			"• Creates urgency",
			"• Enables progress tracking",
			"",
			"Why it matters:",
			"• Prevents procrastination",
			"• Enables planning and scheduling",
			"• Creates accountability",
			"• Allows for course correction",
		},
		[]string{
			"❌ Poor Example:",
			"'Implement new CI/CD pipeline eventually'",
			"",
			"✅ SMART Example:",
			"'Implement CI/CD pipeline for 3 core services by end of Q3 2024, with Phase 1 (design) by July 15 and Phase 2 (implementation) by Sept 15'",
			"",
			"Timeline breakdown:",
			"• Phase 1 deadline: July 15, 2024",
			"• Phase 2 deadline: Sept 15, 2024",
			"• Final completion: Q3 2024",
			"• Scope: 3 core services",
		},
	)

	b.table("Before & After: SMART Transformation",
		[]string{"Before (Weak)", "After (SMART)", "What Changed"},
		[][]string{
			{
				"Improve team skills",
				"Complete cloud certification for 8 team members by Q4 2024 with 90% pass rate",
				"Added specific number, metric, and deadline",
			},
			{
				"Better customer support",
				"Reduce average ticket resolution time from 48h to 24h by implementing new ticketing system by July 2024",
				"Quantified improvement, added method and timeline",
			},
			{
				"Modernize infrastructure",
				"Migrate 75% of on-premise workloads to cloud by Dec 2024, starting with 3 pilot applications in Q2",
				"Specified percentage, deadline, and phased approach",
			},
			{
				"Increase productivity",
				"Reduce manual deployment time by 70% (from 4h to 1.2h) by automating release process by Q3 2024",
				"Quantified baseline, target, and method",
			},
		},
	)

	b.bullets("Writing Your Function/Team Objectives",
		"Step 1: Understand organizational strategy and goals",
		"• Review company OKRs, strategic plans, and priorities",
		"• Identify how your function contributes",
		"",
		"Step 2: Identify your function's key responsibilities",
		"• What are you accountable for?",
		"• What value does your team provide?",
		"",
		"Step 3: Define 3-5 key objectives (don't overcommit!)",
		"• Focus on high-impact areas",
		"• Apply SMART criteria to each",
		"",
		"Step 4: Validate with stakeholders",
		"• Get buy-in from leadership and peers",
	)

	b.table("Sample Objectives by Technology Function",
		[]string{"Function", "Sample SMART Objective"},
		[][]string{
			{
				"Software Development",
				"Increase deployment frequency from monthly to weekly by implementing automated CI/CD pipeline by Q3 2024",
			},
			{
				"Infrastructure & DevOps",
				"Achieve 99.9% system uptime by implementing redundancy and automated failover for all critical services by Q4 2024",
			},
			{
				"Quality Assurance",
				"Reduce production defects by 50% (from 20 to 10 per release) by implementing shift-left testing by Q2 2024",
			},
			{
				"IT Security",
				"Complete security compliance audit with zero critical findings by implementing automated vulnerability scanning by Dec 2024",
			},
			{
				"Product Management",
				"Increase feature adoption rate from 35% to 60% by implementing user feedback loop and A/B testing by Q3 2024",
			},
			{
				"Data Engineering",
				"Reduce data processing latency from 24h to 2h by optimizing ETL pipelines for 5 core data sources by Q4 2024",
			},
		},
	)

	b.table("Common Pitfalls to Avoid",
		[]string{"Pitfall", "Why It's a Problem", "How to Fix It"},
		[][]string{
			{"Too many objectives", "Dilutes focus and resources", "Limit to 3-5 key objectives"},
			{"Vague language", "Open to interpretation", "Use specific, measurable terms"},
			{"No baseline data", "Can't measure improvement", "Establish current state first"},
			{"Unrealistic targets", "Demotivates team", "Set challenging but achievable goals"},
			{"Activity-focused", "Measures effort, not outcome", "Focus on results and impact"},
			{"Missing stakeholder buy-in", "Misalignment and conflicts", "Validate with leadership early"},
		},
	)

	b.bullets("🎯 Day 1 Exercise: Write Your Own Objectives",
		"Activity (45 minutes):",
		"",
		"1. Review your function's current responsibilities (10 min)",
		"   • List your team's key accountabilities",
		"",
		"2. Draft 3-5 SMART objectives for your function (25 min)",
		"   • Use the SMART framework",
		"   • Consider organizational alignment",
		"",
		"3. Peer review in pairs (10 min)",
		"   • Exchange with a colleague",
		"   • Check each criterion: S-M-A-R-T",
		"   • Provide constructive feedback",
		"",
		"We'll share examples after the break!",
	)

	b.bullets("Day 1 Summary",
		"Key Takeaways:",
		"",
		"✓ Objectives define WHAT you want to achieve",
		"✓ SMART framework ensures objectives are effective:",
		"  • Specific, Measurable, Achievable, Relevant, Time-bound",
		"✓ Good objectives provide clarity and direction",
		"✓ Function objectives must align with organizational strategy",
		"✓ Quality over quantity - focus on 3-5 key objectives",
		"",
		"Tomorrow: We'll learn how to create KPIs and cascade them to your team members!",
	)

	// ----- Day 2: KPIs and cascading -----

	b.title("DAY 2", "KPIs & Cascading to Your Team")

	b.bullets("What Are Key Performance Indicators (KPIs)?",
		"Definition:",
		"KPIs are quantifiable metrics that measure progress toward objectives",
		"",
		"Characteristics of Good KPIs:",
		"• Quantifiable - expressed in numbers or percentages",
		"• Actionable - can influence through your actions",
		"• Relevant - directly related to objectives",
		"• Timely - measured at appropriate intervals",
		"• Accurate - based on reliable data",
		"",
		"Remember: KPIs measure HOW you track achievement of objectives",
	)

	b.table("Types of KPIs in Technology",
		[]string{"KPI Type", "What It Measures", "Example"},
		[][]string{
			{"Input KPIs", "Resources consumed", "Hours spent on development, Budget allocated"},
			{"Process KPIs", "Efficiency of activities", "Code review turnaround time, Sprint velocity"},
			{"Output KPIs", "Deliverables produced", "Features deployed, Stories completed"},
			{"Outcome KPIs", "Results achieved", "System uptime %, Customer satisfaction score"},
			{"Leading KPIs", "Predict future performance", "Test coverage %, Number of code commits"},
			{"Lagging KPIs", "Past performance", "Production incidents, Customer churn rate"},
		},
	)

	b.bullets("How to Create KPIs from Objectives",
		"Step 1: Start with your SMART objective",
		"• The objective already contains measurable elements",
		"",
		"Step 2: Identify what needs to be measured",
		"• What indicates progress?",
		"• What shows success?",
		"",
		"Step 3: Define the metric formula",
		"• How will you calculate it?",
		"• What data sources will you use?",
		"",
		"Step 4: Set target values and thresholds",
		"• What's the goal? (Target)",
		"• What's acceptable? (Threshold)",
		"• What's excellent? (Stretch goal)",
	)

	b.table("From Objectives to KPIs: Examples",
		[]string{"SMART Objective", "Related KPIs", "Target"},
		[][]string{
			{
				"Reduce production bugs by 50% by Q4 2024",
				"• # of critical bugs per release\n• Bug resolution time (hours)\n• Bug escape rate (%)",
				"• ≤ 5 critical bugs\n• < 24 hours\n• < 5%",
			},
			{
				"Increase deployment frequency from monthly to weekly by Q3",
				"• Deployments per week\n• Deployment success rate (%)\n• Mean time to deploy (min)",
				"• 4 per week\n• ≥ 95%\n• < 30 min",
			},
			{
				"Improve system uptime to 99.9% by implementing redundancy by Q4",
				"• System uptime (%)\n• Mean time between failures (hours)\n• Mean time to recovery (min)",
				"• ≥ 99.9%\n• > 720 hours\n• < 15 min",
			},
			{
				"Achieve 80% test automation coverage for critical features by Q2",
				"• Test automation coverage (%)\n• Test execution time (min)\n• Tests passing rate (%)",
				"• ≥ 80%\n• < 20 min\n• ≥ 98%",
			},
		},
	)

	b.columns("Characteristics of Effective KPIs",
		[]string{
			"Good KPIs Are:",
			"",
			"✓ Clearly Defined",
			"• No ambiguity in calculation",
			"• Everyone understands the metric",
			"",
			"✓ Easy to Measure",
			"• Data is readily available",
			"• Can be tracked regularly",
			"",
			"✓ Actionable",
			"• Team can influence the outcome",
			"• Clear actions drive improvement",
		},
		[]string{
			"✓ Relevant",
			"• Directly tied to objectives",
			"• Matters to stakeholders",
			"",
			"✓ Balanced",
			"• Mix of leading & lagging indicators",
			"• Covers quality, speed, and efficiency",
			"",
			"✓ Limited in Number",
			"• 3-5 KPIs per objective",
			"• Focus on what matters most",
			"",
			"✓ Regularly Reviewed",
			"• Tracked at appropriate frequency",
			"• Used for decision-making",
		},
	)

	b.chart("KPI Tracking Example: Deployment Frequency",
		[]string{"Q1", "Q2", "Q3", "Q4"},
		[]deck.Series{
			{Name: "Deployment Frequency", Values: []float64{4, 8, 12, 16}},
			{Name: "Target", Values: []float64{16, 16, 16, 16}},
		},
		deck.ChartLine,
	)

	b.title("Cascading Objectives & KPIs", "From Organization to Individual")

	b.bullets("Why Cascade Objectives and KPIs?",
		"Benefits of Cascading:",
		"",
		"✓ Alignment - Everyone works toward common goals",
		"✓ Clarity - Each person understands their contribution",
		"✓ Accountability - Clear ownership at every level",
		"✓ Motivation - People see how their work matters",
		"✓ Transparency - Visible connection from top to bottom",
		"✓ Efficiency - Eliminates conflicting priorities",
		"",
		"The Goal: Create a 'line of sight' from company strategy to daily tasks",
	)

	b.table("The Cascading Framework: Levels of Objectives",
		[]string{"Level", "Scope", "Example", "Owner"},
		[][]string{
			{
				"Organizational",
				"Company-wide strategic goals",
				"Become market leader in cloud solutions",
				"CEO / Executive Team",
			},
			{
				"Departmental",
				"Division or department goals",
				"Achieve 99.9% platform reliability",
				"CTO / VP Engineering",
			},
			{
				"Function/Team",
				"Team or function-specific goals",
				"Reduce infrastructure incidents by 60%",
				"Engineering Manager",
			},
			{
				"Individual",
				"Personal performance goals",
				"Implement monitoring for 10 critical services",
				"DevOps Engineer",
			},
		},
	)

	b.bullets("The 5-Step Cascading Process",
		"Step 1: Understand Upper-Level Objectives",
		"• Review organizational and departmental objectives",
		"• Identify how your function contributes",
		"",
		"Step 2: Define Your Function/Team Objectives",
		"• What must your team achieve to support upper objectives?",
		"• Apply SMART framework",
		"",
		"Step 3: Break Down into Individual Objectives",
		"• What should each team member accomplish?",
		"• Ensure fair distribution and capabilities match",
		"",
		"Step 4: Create Corresponding KPIs at Each Level",
		"• Team KPIs roll up to function objectives",
		"• Individual KPIs roll up to team objectives",
		"",
		"Step 5: Review and Align",
		"• Validate with team members",
		"• Ensure understanding and buy-in",
	)

	b.table("Cascading Example: From Company to Individual",
		[]string{"Level", "Objective", "KPI"},
		[][]string{
			{
				"Company",
				"Increase customer retention by 25% by end of year",
				"Customer retention rate ≥ 85%",
			},
			{
				"Department (Engineering)",
				"Improve platform stability and performance by Q4",
				"System uptime ≥ 99.9%\nP95 response time < 200ms",
			},
			{
				"Team (DevOps)",
				"Reduce production incidents by 60% by Q3 2024",
				"Incidents per month ≤ 4\nMTTR < 30 minutes",
			},
			{
				"Individual (DevOps Engineer)",
				"Implement monitoring and alerting for 10 critical services by July 2024",
				"Services monitored: 10/10\nAlert response time < 5 min\nFalse positive rate < 5%",
			},
		},
	)

	b.bullets("Creating Individual Team Member KPIs",
		"Principles for Individual KPIs:",
		"",
		"• Based on role and responsibilities",
		"  → Software Engineer: Code quality, delivery, collaboration",
		"  → QA Engineer: Test coverage, defect detection, automation",
		"",
		"• Aligned with team objectives",
		"  → Individual KPIs contribute to team KPIs",
		"",
		"• Within individual's control",
		"  → Can be influenced by their actions",
		"",
		"• Balanced scorecard approach",
		"  → Mix of quantitative and qualitative metrics",
		"  → Include both results and behaviors",
		"",
		"• Developed collaboratively",
		"  → Discuss with team member, don't impose",
	)

	b.table("Individual KPI Examples by Role",
		[]string{"Role", "Sample KPIs", "Target"},
		[][]string{
			{
				"Software Engineer",
				"• Story points delivered per sprint\n• Code review turnaround time\n• Code quality score (SonarQube)",
				"• 20-25 points\n• < 24 hours\n• A rating",
			},
			{
				"QA Engineer",
				"• Test cases automated per sprint\n• Defect detection rate\n• Test execution time reduction",
				"• 15-20 cases\n• ≥ 85%\n• 30% reduction",
			},
			{
				"DevOps Engineer",
				"• Pipeline reliability (%)\n• Infrastructure as Code coverage\n• Deployment automation %",
				"• ≥ 98%\n• ≥ 80%\n• ≥ 90%",
			},
			{
				"Tech Lead",
				"• Team velocity improvement\n• Technical debt reduction\n• Knowledge sharing sessions led",
				"• 15% increase\n• 20% reduction\n• 2 per month",
			},
			{
				"Product Owner",
				"• Feature adoption rate\n• Sprint goal achievement\n• Stakeholder satisfaction score",
				"• ≥ 60%\n• ≥ 90%\n• ≥ 8/10",
			},
		},
	)

	b.bullets("Ensuring Alignment: The Vertical Check",
		"Ask These Questions:",
		"",
		"Bottom-Up (Individual → Company):",
		"• 'If I achieve my KPIs, does it help my team achieve theirs?'",
		"• 'If our team achieves our KPIs, does it help the department?'",
		"• 'Does the department's success support company objectives?'",
		"",
		"Top-Down (Company → Individual):",
		"• 'How does company strategy translate to department goals?'",
		"• 'What must my team do to support department objectives?'",
		"• 'What should each individual contribute?'",
		"",
		"If the answer to any question is unclear, revisit the cascade!",
	)

	b.table("Common Cascading Mistakes to Avoid",
		[]string{"Mistake", "Impact", "Solution"},
		[][]string{
			{
				"Cascading too many objectives",
				"Team overwhelmed, diluted focus",
				"Limit to 3-5 objectives per level",
			},
			{
				"Lost in translation",
				"Individual KPIs don't support team goals",
				"Verify alignment at each level",
			},
			{
				"One-way communication",
				"Lack of buy-in, unrealistic targets",
				"Collaborate with team on objectives",
			},
			{
				"Conflicting KPIs",
				"Competing priorities, confusion",
				"Review for contradictions before finalizing",
			},
			{
				"No visibility",
				"Team doesn't see the big picture",
				"Share company and department objectives",
			},
			{
				"Set and forget",
				"Objectives become irrelevant",
				"Review and adjust quarterly",
			},
		},
	)

	b.bullets("Tracking and Monitoring KPIs",
		"Best Practices:",
		"",
		"• Establish measurement cadence",
		"  → Daily: Operational metrics (uptime, incidents)",
		"  → Weekly: Team performance (velocity, completed stories)",
		"  → Monthly: Strategic metrics (customer satisfaction, retention)",
		"",
		"• Use dashboards and visualization",
		"  → Make KPIs visible to the team",
		"  → Use tools like Jira, Grafana, Tableau",
		"",
		"• Regular review meetings",
		"  → Weekly team syncs, Monthly business reviews",
		"",
		"• Take action on insights",
		"  → KPIs should drive decisions, not just report status",
		"  → If trending wrong direction, investigate and adjust",
	)

	b.bullets("Regular Reviews and Adjustments",
		"Quarterly Review Process:",
		"",
		"1. Review actual performance vs. targets",
		"   • What went well? What didn't?",
		"",
		"2. Identify obstacles and enablers",
		"   • What helped or hindered progress?",
		"",
		"3. Celebrate achievements",
		"   • Recognize team and individual wins",
		"",
		"4. Adjust objectives and KPIs if needed",
		"   • Business context changes - objectives should too",
		"   • But don't change too frequently (stability matters)",
		"",
		"5. Plan for next quarter",
		"   • Set new targets, identify needed support",
	)

	b.bullets("Communicating Objectives and KPIs to Your Team",
		"Effective Communication Strategies:",
		"",
		"✓ Explain the 'Why'",
		"  • Connect objectives to company strategy and purpose",
		"",
		"✓ Be Transparent",
		"  • Share both successes and challenges",
		"",
		"✓ Encourage Questions",
		"  • Create safe space for clarification and feedback",
		"",
		"✓ Make it Visual",
		"  • Use dashboards, charts, and progress indicators",
		"",
		"✓ Regular Updates",
		"  • Don't wait for formal reviews - communicate continuously",
		"",
		"✓ Two-Way Dialogue",
		"  • Listen to team input on feasibility and approach",
	)

	b.bullets("🎯 Day 2 Exercise: Cascade Your Objectives",
		"Activity (60 minutes):",
		"",
		"Part 1: Create Team KPIs (20 min)",
		"• Take one of your function objectives from Day 1",
		"• Define 3-5 KPIs that measure progress",
		"• Specify targets and measurement frequency",
		"",
		"Part 2: Cascade to Individual (25 min)",
		"• Select 2 team members (or use fictional examples)",
		"• Define individual objectives that support team objective",
		"• Create 3-4 individual KPIs for each",
		"",
		"Part 3: Alignment Check (15 min)",
		"• Verify individual KPIs → Team KPIs → Function Objective",
		"• Share with a peer for feedback",
	)

	b.table("Complete Example: E-Commerce Platform Team",
		[]string{"Level", "Objective/KPI", "Owner"},
		[][]string{
			{
				"Company Objective",
				"Increase annual revenue by 30% through improved digital experience",
				"CEO",
			},
			{
				"Engineering Dept KPI",
				"Improve platform performance: Page load time < 2 sec, 99.95% uptime",
				"VP Engineering",
			},
			{
				"Platform Team Objective",
				"Optimize checkout process to reduce cart abandonment by 25% by Q3",
				"Engineering Manager",
			},
			{
				"Team KPIs",
				"• Cart abandonment rate < 15%\n• Checkout completion time < 45 sec\n• Payment success rate > 99%",
				"Platform Team",
			},
			{
				"Individual (Frontend Dev)",
				"Implement one-click checkout for returning users by July 2024",
				"Sarah Chen",
			},
			{
				"Individual KPIs",
				"• Feature completion: 100% by July 31\n• Page load time: < 1.5 sec\n• Zero critical bugs in production",
				"Sarah Chen",
			},
		},
	)

	b.bullets("Tools and Templates",
		"Recommended Tools for KPI Tracking:",
		"",
		"• Project Management: Jira, Azure DevOps, Monday.com",
		"• Dashboards: Grafana, Tableau, Power BI, Klipfolio",
		"• OKR Software: Weekdone, Perdoo, Gtmhub, WorkBoard",
		"• Custom: Google Sheets, Excel with regular updates",
		"",
		"Templates to Use:",
		"• Objective Setting Template (SMART format)",
		"• KPI Definition Sheet (metric, formula, target, frequency)",
		"• Cascading Matrix (showing alignment across levels)",
		"• Progress Tracker (weekly/monthly updates)",
		"• Review Meeting Agenda",
	)

	b.table("Template: SMART Objective Definition",
		[]string{"Component", "Your Response"},
		[][]string{
			{"Specific: What exactly will you achieve?", ""},
			{"Measurable: How will you measure success?", ""},
			{"Achievable: Why is this realistic?", ""},
			{"Relevant: How does this align with broader goals?", ""},
			{"Time-bound: What is the deadline/timeline?", ""},
			{"Complete SMART Objective:", ""},
		},
	)

	b.table("Template: KPI Definition Sheet",
		[]string{"Element", "Description"},
		[][]string{
			{"KPI Name", "Clear, descriptive name"},
			{"Related Objective", "Which objective does this measure?"},
			{"Formula/Calculation", "How is it calculated?"},
			{"Data Source", "Where does the data come from?"},
			{"Target Value", "What is the goal?"},
			{"Threshold (Acceptable)", "What is the minimum acceptable?"},
			{"Measurement Frequency", "Daily / Weekly / Monthly / Quarterly"},
			{"Owner", "Who is responsible for tracking?"},
			{"Last Updated", "Date of last review"},
		},
	)

	b.bullets("Your Action Plan: Next Steps",
		"Week 1-2: Foundation",
		"☐ Review organizational strategy and departmental objectives",
		"☐ Finalize your function's 3-5 SMART objectives",
		"☐ Get approval from your manager",
		"",
		"Week 3-4: KPIs and Cascading",
		"☐ Define 3-5 KPIs for each function objective",
		"☐ Set up tracking mechanisms and dashboards",
		"☐ Begin cascading: Meet 1-on-1 with each team member",
		"☐ Co-create individual objectives and KPIs",
		"",
		"Ongoing:",
		"☐ Track KPIs at defined frequency",
		"☐ Hold regular review meetings",
		"☐ Adjust as needed based on business changes",
	)

	b.bullets("Critical Success Factors",
		"To succeed with objectives and KPIs:",
		"",
		"1. Leadership Commitment",
		"   • Visible support from senior management",
		"",
		"2. Clear Communication",
		"   • Everyone understands the 'why' and 'how'",
		"",
		"3. Data Availability",
		"   • Can actually measure what you define",
		"",
		"4. Regular Reviews",
		"   • Make it part of your rhythm, not a one-time event",
		"",
		"5. Flexibility",
		"   • Adjust when context changes, but maintain stability",
		"",
		"6. Recognition",
		"   • Celebrate achievements and progress",
	)

	b.bullets("Workshop Summary: Key Takeaways",
		"Day 1 - SMART Objectives:",
		"✓ Objectives define what you want to achieve",
		"✓ SMART framework ensures clarity and effectiveness",
		"✓ Good objectives align with organizational strategy",
		"",
		"Day 2 - KPIs & Cascading:",
		"✓ KPIs are quantifiable measures of objective achievement",
		"✓ Different types of KPIs serve different purposes",
		"✓ Cascading creates alignment from company to individual",
		"✓ Regular tracking and review drives continuous improvement",
		"",
		"Remember: This is a journey, not a destination!",
		"Start small, learn, and iterate.",
	)

	b.title("Questions & Discussion", "Thank you for your participation!")

	b.bullets("Additional Resources",
		"Recommended Reading:",
		"• 'Measure What Matters' by John Doerr (OKRs)",
		"• 'The Balanced Scorecard' by Kaplan & Norton",
		"• 'High Output Management' by Andy Grove",
		"",
		"Online Resources:",
		"• Google's Guide to OKRs: rework.withgoogle.com/guides/set-goals-with-okrs",
		"• KPI Library: kpilibrary.com",
		"• Atlassian Goal Setting Guide: atlassian.com/team-playbook/plays/goals-signals-measures",
		"",
		"Tools:",
		"• Free templates available on Google Sheets",
		"• Explore OKR software trials (Weekdone, Perdoo)",
		"• Dashboard tools: Grafana (open source)",
	)

	b.title("Stay Connected", "Keep practicing and don't hesitate to reach out for support!")

	if b.err != nil {
		return nil, b.err
	}
	return b.d, nil
}
