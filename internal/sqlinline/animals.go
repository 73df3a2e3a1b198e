package sqlinline

const QInsertAnimal = `--sql ad514c41-89ac-4d0c-b0c8-05abb28796bd
insert into animals (id, name, description, image_url, type, category, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, now(), now())
returning created_at, updated_at;
`

const QListAnimals = `--sql 588a8e56-b54c-478e-9f2f-0f8b1037d7cc
select id, name, description, image_url, type, category, created_at, updated_at
from animals
order by created_at desc, id desc;
`

const QSelectAnimalByID = `--sql 984ec277-2254-40bf-8071-4fbf41d42340
select id, name, description, image_url, type, category, created_at, updated_at
from animals
where id = $1
limit 1;
`

const QUpdateAnimal = `--sql c90d54cf-9364-4a05-b883-53f618cd9af7
update animals set
    name = $2,
    description = $3,
    image_url = $4,
    type = $5,
    category = coalesce($6, category),
    updated_at = now()
where id = $1
returning id, name, description, image_url, type, category, created_at, updated_at;
`

const QDeleteAnimal = `--sql 3d049589-1f0f-4b49-abfc-6ecdf211bebf
delete from animals where id = $1;
`

const QCountAnimals = `--sql 2ffef340-3ae2-4fd1-bc39-ac52c9d9fc11
select count(*) from animals;
`
