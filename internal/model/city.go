package model

type City struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	State           string `json:"state"` // UF: SP, RJ, MG...
	PropertiesCount int    `json:"propertiesCount"`
}

type CityFields struct {
	Name            string
	State           string
	PropertiesCount int
}

type CityPatch struct {
	Name  *string
	State *string
}

func (patch CityPatch) Apply(c *City) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.State != nil {
		c.State = *patch.State
	}
}
