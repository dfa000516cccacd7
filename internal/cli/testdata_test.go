package cli

const (
	clientID   = "6f1c1c1e-8a55-4d7a-9a43-2c1f3a7d9e10"
	transferID = "0b7e7f4e-1f0e-4a4b-9a57-3c8f61b8a001"
	dispoID    = "0b7e7f4e-1f0e-4a4b-9a57-3c8f61b8a002"
	billedID   = "0b7e7f4e-1f0e-4a4b-9a57-3c8f61b8a003"
	brokenID   = "0b7e7f4e-1f0e-4a4b-9a57-3c8f61b8a004"
)

const datasetJSONFixture = `{
  "clients": [{"id": "` + clientID + `", "name": "Hotel Miramar"}],
  "records": [
    {
      "id": "` + transferID + `",
      "client_id": "` + clientID + `",
      "date": "2024-05-02",
      "service_kind": "transfer",
      "price": 100,
      "origin": "Aeropuerto",
      "destination": "Hotel",
      "commission": {"collaborator_name": "Marta", "kind": "percentage", "value": 10}
    },
    {
      "id": "` + dispoID + `",
      "client_id": "` + clientID + `",
      "date": "2024-05-10",
      "service_kind": "disposition",
      "price": "20",
      "hours": 3,
      "discount": {"kind": "percentage", "value": 10},
      "extra_charges": [{"name": "Peaje", "price": "25"}]
    },
    {
      "id": "` + billedID + `",
      "client_id": "` + clientID + `",
      "date": "2024-06-01",
      "service_kind": "transfer",
      "price": 40,
      "billed": true,
      "commission": {"collaborator_name": "Andrés", "kind": "fixed", "value": 5}
    },
    {
      "id": "` + brokenID + `",
      "client_id": "` + clientID + `",
      "date": "2024-05-20",
      "service_kind": "disposition",
      "price": 20
    }
  ]
}`
