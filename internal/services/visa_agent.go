package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type VisaAgentInterface interface {
	Lookup(ctx context.Context, nationality, destinationCountry string) (response_models.VisaInfo, error)
}

type VisaAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewVisaAgent(invoker utils.ModelInvokerInterface) VisaAgentInterface {
	return &VisaAgent{invoker: invoker}
}

const visaSystemInstruction = `You are a visa and immigration assistant.
Use realistic, up-to-date knowledge about typical tourist visa rules.
However, you are NOT an official source and must always tell users
to verify with the official embassy or consulate.
Always return STRICTLY valid JSON. Do NOT include any text outside JSON.`

func (a *VisaAgent) Lookup(ctx context.Context, nationality, destinationCountry string) (response_models.VisaInfo, error) {
	if strings.TrimSpace(nationality) == "" || strings.TrimSpace(destinationCountry) == "" {
		return response_models.VisaInfo{}, utils.InvalidInput("nationality and destinationCountry are required")
	}

	prompt := fmt.Sprintf(`
NATIONALITY: %s
DESTINATION COUNTRY: %s

TASK:
- Describe typical tourist visa requirements for this nationality visiting this country.
- Indicate clearly if visa is required, not required, visa-on-arrival, or depends on duration/purpose.
- Provide realistic processing time ranges and approximate fees when a visa is required.
- List common documents usually requested.
- Use simple language and short bullet-point style notes.

Return JSON ONLY with this exact structure:

{
  "visaRequired": "yes" | "no" | "depends",
  "visaType": "tourist" | "schengen" | "e-visa" | "visa-on-arrival" | "none" | "varies",
  "processingTime": "string, e.g., '10-15 working days' or 'usually 3-5 days for e-visa'",
  "fees": "string, e.g., 'Around 80 EUR' or 'Varies by consulate'",
  "stayLimit": "string, e.g., 'Up to 90 days in a 180-day period'",
  "entryType": "single" | "multiple" | "varies",
  "documents": [
    "Passport valid for at least X months beyond travel date",
    "Recent passport-size photographs",
    "Proof of sufficient funds / bank statements",
    "Confirmed return or onward ticket",
    "Travel insurance (if commonly required)",
    "Hotel booking or invitation letter",
    "Completed visa application form"
  ],
  "notes": [
    "Short additional remark 1",
    "Short additional remark 2"
  ],
  "summary": "2-3 sentence plain English explanation of the requirements.",
  "disclaimer": "Always confirm with the official embassy or consulate before making travel decisions."
}
`, nationality, destinationCountry)

	raw, err := requestObject(ctx, a.invoker, "VisaAgent", prompt, visaSystemInstruction)
	if err != nil {
		return response_models.VisaInfo{}, err
	}

	var visa response_models.VisaInfo
	if err := json.Unmarshal(raw, &visa); err != nil {
		return response_models.VisaInfo{}, utils.InvalidAgentResponse("VisaAgent", err.Error())
	}
	if strings.TrimSpace(string(visa.Summary)) == "" {
		return response_models.VisaInfo{}, utils.InvalidAgentResponse("VisaAgent", "summary is required")
	}
	visa.Documents = response_models.OrEmpty(visa.Documents)
	visa.Notes = response_models.OrEmpty(visa.Notes)
	return visa, nil
}
