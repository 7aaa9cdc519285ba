package testutil

// DittoPayload is the upstream body used by the end-to-end examples.
const DittoPayload = `{"id":132,"name":"ditto","height":3,"weight":40,"abilities":[{"ability":{"name":"limber"}}],"types":[{"type":{"name":"normal"}}],"base_experience":101,"sprites":{"front_default":"http://x/ditto.png"},"moves":[{"move":{"name":"transform"}}]}`

// DittoEntityJSON is the normalized response expected for DittoPayload.
const DittoEntityJSON = `{"id":132,"name":"ditto","height":3,"weight":40,"abilities":["limber"],"types":["normal"],"base_experience":101,"sprite_url":"http://x/ditto.png","moves":["transform"]}`
