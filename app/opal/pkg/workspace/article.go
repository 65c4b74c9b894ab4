package workspace

// DefaultTitle 首次打开时的文章标题
const DefaultTitle = "MedTech Regulatory Outlook 2025"

// DefaultArticle 首次打开时的示例文章
const DefaultArticle = `# Medical Device Regulatory Outlook 2025: Navigating the AI Frontier

## Executive Summary
The medical device landscape is undergoing a seismic shift driven by Artificial Intelligence (AI) integration. As we approach 2026, regulatory bodies across the globe are scrambling to harmonize safety standards with innovation speed. This document outlines key regulatory changes in the EU (MDR/AI Act), US (FDA), and China (NMPA).

## 1. The EU AI Act and MDR Interplay
The European Union's AI Act, fully enforceable by mid-2026, introduces a risk-based classification system. 
*   **High-Risk Systems:** AI components in Class IIa/IIb/III devices are automatically "High Risk" under Annex III.
*   **Conformity Assessment:** Notified Bodies (NBs) now require specific AI competency.
*   **Post-Market Surveillance (PMS):** Continuous learning models require a new PMS plan updating cycle every 6 months.

## 2. FDA's Pre-Determined Change Control Plans (PCCP)
The FDA has moved from "locked" algorithms to allowing adaptive AI via PCCPs.
*   **Draft Guidance 2024:** Clarified scope for ML-enabled Software as a Medical Device (SaMD).
*   **Key Requirement:** Manufacturers must specify the *region of modification* and *performance impact* upfront.

## 3. Global Compliance Milestones
*   **Q1 2025:** FDA Final Guidance on PCCP.
*   **Q3 2025:** EU Harmonized Standards for AI Act published.
*   **Q1 2026:** Full application of EU AI Act for Medical Devices.
*   **Q4 2026:** China NMPA mandatory unique device identification (UDI) for Class III AI software.

## 4. Regulatory Burden & Strategy
The cost of compliance is rising. Small manufacturers face a "Valley of Death" between prototype and clearance.
*   **EU Burden:** Estimated +35% administrative cost due to dual MDR/AI Act compliance.
*   **US Advantage:** The PCCP pathway may reduce re-submission times by 40%.

## 5. Technology Integration
Generative AI (GenAI) is the new frontier. Using LLMs for patient triage creates specific "Hallucination Risks" that require specific mitigation controls in the Technical File.

> "Innovation without regulation is dangerous; regulation without innovation is dead." - Industry Analyst`
