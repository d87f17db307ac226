package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

func main() {
	fmt.Println("🔍 Verifying Incomplete Components in DriftMgr...")
	fmt.Println(strings.Repeat("=", 60))

	// Define the project root
	projectRoot := "."

	// Track findings
	findings := make(map[string][]string)

	// Check for different types of incomplete components
	checkPatterns := map[string][]string{
		"TODO Comments": {
			"TODO",
			"FIXME",
		},
		"Placeholder Implementations": {
			"placeholder",
			"not implemented",
			"unimplemented",
		},
		"Stub Implementations": {
			"stub",
			"Stub",
		},
		"Empty Returns": {
			"return.*nil.*//.*stub",
			"return.*empty.*//.*stub",
			"return.*placeholder",
		},
	}

	// Search through the codebase
	err := filepath.Walk(projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip certain directories
		if shouldSkipDirectory(path) {
			return nil
		}

		// Only check Go files
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		// Read file content
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		// Check for patterns
		for category, patterns := range checkPatterns {
			for _, pattern := range patterns {
				matches := findPatternInContent(string(content), pattern)
				if len(matches) > 0 {
					for _, match := range matches {
						findings[category] = append(findings[category], fmt.Sprintf("%s:%s", path, match))
					}
				}
			}
		}

		return nil
	})

	if err != nil {
		fmt.Printf("Error walking directory: %v\n", err)
		return
	}

	// Report findings
	fmt.Println("\n📊 **INCOMPLETE COMPONENTS ANALYSIS**")
	fmt.Println(strings.Repeat("=", 60))

	totalFindings := 0
	for category, items := range findings {
		if len(items) > 0 {
			fmt.Printf("\n🔴 **%s** (%d items):\n", category, len(items))
			for _, item := range items {
				fmt.Printf("  - %s\n", item)
			}
			totalFindings += len(items)
		}
	}

	if totalFindings == 0 {
		fmt.Println("\n✅ **NO INCOMPLETE COMPONENTS FOUND!**")
		fmt.Println("All components appear to be complete.")
	} else {
		fmt.Printf("\n📈 **SUMMARY**\n")
		fmt.Printf("Total incomplete components found: %d\n", totalFindings)

		// Categorize by system
		categorizeBySystem(findings)

		// Provide recommendations
		provideRecommendations(findings)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Verification complete!")
}

func shouldSkipDirectory(path string) bool {
	skipDirs := []string{
		".git",
		"node_modules",
		"vendor",
		".github",
		"docs",
		"scripts",
		"tests",
		"web",
		"lambda_functions",
	}

	for _, dir := range skipDirs {
		if strings.Contains(path, dir) {
			return true
		}
	}
	return false
}

func findPatternInContent(content, pattern string) []string {
	var matches []string
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if matched, _ := regexp.MatchString("(?i)"+pattern, line); matched {
			// Clean up the line for display
			cleanLine := strings.TrimSpace(line)
			if len(cleanLine) > 100 {
				cleanLine = cleanLine[:100] + "..."
			}
			matches = append(matches, fmt.Sprintf("%d: %s", i+1, cleanLine))
		}
	}

	return matches
}

func categorizeBySystem(findings map[string][]string) {
	fmt.Println("\n🏗️ **SYSTEM CATEGORIZATION**")
	fmt.Println(strings.Repeat("-", 40))

	systems := map[string][]string{
		"Simulation System": {
			"simulation",
			"simulator",
		},
		"Automation System": {
			"automation",
			"actions",
			"scheduler",
		},
		"Discovery Engine": {
			"discovery",
			"engine",
		},
		"State Management": {
			"state",
			"backend",
		},
		"Remediation System": {
			"remediation",
			"executors",
		},
		"Security & Compliance": {
			"security",
			"compliance",
		},
		"API & Handlers": {
			"api",
			"handlers",
		},
		"Other": {},
	}

	for systemName, keywords := range systems {
		systemFindings := []string{}

		for category, items := range findings {
			for _, item := range items {
				// Check if item belongs to this system
				belongsToSystem := false
				if len(keywords) == 0 {
					// "Other" category - check if it doesn't belong to any other system
					belongsToSystem = true
					for otherSystem, otherKeywords := range systems {
						if otherSystem != "Other" && otherSystem != systemName {
							for _, keyword := range otherKeywords {
								if strings.Contains(strings.ToLower(item), keyword) {
									belongsToSystem = false
									break
								}
							}
						}
					}
				} else {
					for _, keyword := range keywords {
						if strings.Contains(strings.ToLower(item), keyword) {
							belongsToSystem = true
							break
						}
					}
				}

				if belongsToSystem {
					systemFindings = append(systemFindings, fmt.Sprintf("%s: %s", category, item))
				}
			}
		}

		if len(systemFindings) > 0 {
			fmt.Printf("\n🔧 **%s** (%d items):\n", systemName, len(systemFindings))
			for _, finding := range systemFindings {
				fmt.Printf("  - %s\n", finding)
			}
		}
	}
}

func provideRecommendations(findings map[string][]string) {
	fmt.Println("\n💡 **RECOMMENDATIONS**")
	fmt.Println(strings.Repeat("-", 40))

	// Count findings by category
	todoCount := len(findings["TODO Comments"])
	placeholderCount := len(findings["Placeholder Implementations"])
	stubCount := len(findings["Stub Implementations"])
	emptyReturnCount := len(findings["Empty Returns"])

	if todoCount > 0 {
		fmt.Printf("1. **Address %d TODO comments** - These indicate planned work that needs completion\n", todoCount)
	}

	if placeholderCount > 0 {
		fmt.Printf("2. **Replace %d placeholder implementations** - These need real functionality\n", placeholderCount)
	}

	if stubCount > 0 {
		fmt.Printf("3. **Complete %d stub implementations** - These need full implementation\n", stubCount)
	}

	if emptyReturnCount > 0 {
		fmt.Printf("4. **Fix %d empty return statements** - These need proper return values\n", emptyReturnCount)
	}

	// Priority recommendations
	fmt.Println("\n🎯 **PRIORITY RECOMMENDATIONS**")
	fmt.Println(strings.Repeat("-", 40))

	if todoCount > 10 {
		fmt.Println("🔴 **HIGH PRIORITY**: Many TODO comments found - focus on completing planned work")
	}

	if placeholderCount > 5 {
		fmt.Println("🟡 **MEDIUM PRIORITY**: Several placeholder implementations need replacement")
	}

	if stubCount > 3 {
		fmt.Println("🟡 **MEDIUM PRIORITY**: Several stub implementations need completion")
	}

	if emptyReturnCount > 0 {
		fmt.Println("🔴 **HIGH PRIORITY**: Empty return statements need immediate attention")
	}

	// System-specific recommendations
	fmt.Println("\n🏗️ **SYSTEM-SPECIFIC RECOMMENDATIONS**")
	fmt.Println(strings.Repeat("-", 40))

	// Check for simulation system issues
	simulationIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "simulation") || strings.Contains(strings.ToLower(item), "simulator") {
				simulationIssues++
			}
		}
	}

	if simulationIssues > 0 {
		fmt.Println("🔧 **Simulation System**: Focus on completing drift type implementations")
	}

	// Check for automation system issues
	automationIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "automation") || strings.Contains(strings.ToLower(item), "actions") {
				automationIssues++
			}
		}
	}

	if automationIssues > 0 {
		fmt.Println("🔧 **Automation System**: Focus on template processing and event publishing")
	}

	// Check for discovery system issues
	discoveryIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "discovery") || strings.Contains(strings.ToLower(item), "engine") {
				discoveryIssues++
			}
		}
	}

	if discoveryIssues > 0 {
		fmt.Println("🔧 **Discovery Engine**: Focus on provider initialization")
	}

	// Check for state management issues
	stateIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "state") || strings.Contains(strings.ToLower(item), "backend") {
				stateIssues++
			}
		}
	}

	if stateIssues > 0 {
		fmt.Println("🔧 **State Management**: Focus on Azure backend and PostgreSQL repository")
	}

	// Check for remediation system issues
	remediationIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "remediation") || strings.Contains(strings.ToLower(item), "executors") {
				remediationIssues++
			}
		}
	}

	if remediationIssues > 0 {
		fmt.Println("🔧 **Remediation System**: Focus on ResourceChange struct and intelligent service")
	}

	// Check for security system issues
	securityIssues := 0
	for _, items := range findings {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), "security") || strings.Contains(strings.ToLower(item), "compliance") {
				securityIssues++
			}
		}
	}

	if securityIssues > 0 {
		fmt.Println("🔧 **Security & Compliance**: Focus on security service and compliance manager")
	}
}
